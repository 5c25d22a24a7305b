package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/2beens/liftstats/internal/fitness/workouts"
	"github.com/2beens/liftstats/internal/strength"
)

func WriteText(w io.Writer, summary Summary) error {
	fmt.Fprintf(w, "Strength report as of %s\n\n", summary.Now.Format(workouts.DateLayout))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Comparison\tLift 1\tLift 2\tRatio\tTarget\tClassification")
	fmt.Fprintln(tw, "----------\t------\t------\t-----\t------\t--------------")
	for _, f := range summary.Findings {
		if f.NoData {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", f.Type, f.Classification)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Type,
			liftCell(f.Lift1Name, f.Lift1Weight, f.Lift1Unit, f.Lift1Level),
			liftCell(f.Lift2Name, f.Lift2Weight, f.Lift2Unit, f.Lift2Level),
			f.Ratio,
			orDash(f.TargetRatio),
			f.Classification,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCurrent personal records\n\n")
	if len(summary.CurrentPRs) == 0 {
		_, err := fmt.Fprintln(w, "none")
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Exercise\tWeight\tDate\tLevel")
	fmt.Fprintln(tw, "--------\t------\t----\t-----")
	for _, pr := range summary.CurrentPRs {
		fmt.Fprintf(tw, "%s\t%.1f %s\t%s\t%s\n",
			pr.Exercise, pr.Weight, pr.WeightUnit, pr.Date.Format(workouts.DateLayout), orDash(string(pr.StrengthLevel)),
		)
	}
	return tw.Flush()
}

func liftCell(name string, weight float64, unit strength.WeightUnit, level strength.Level) string {
	return fmt.Sprintf("%s %.1f %s (%s)", name, weight, unit, level)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
