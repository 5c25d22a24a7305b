package insights

import (
	"fmt"
	"strings"

	"github.com/2beens/liftstats/internal/strength"
)

const promptHeader = `You are a strength coach reviewing a lifter's muscle balance.
Below are four push/pull and agonist/antagonist comparisons computed from the
last six weeks of training (estimated one-rep maxes, e1RM).

`

const promptInstructions = `
Write 3-5 short sentences for the lifter:
- start with the most important imbalance, if any
- suggest one concrete accessory exercise per imbalance
- for comparisons without data, suggest which lift to start logging
- do not invent numbers that are not listed above
Respond with plain text only.`

// BuildPrompt renders the findings into a coaching prompt. Findings are
// listed in the order given.
func BuildPrompt(findings []strength.Finding) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	for i, f := range findings {
		fmt.Fprintf(&sb, "%d. %s: ", i+1, f.Type)
		if f.NoData {
			sb.WriteString("no data in the last six weeks\n")
			continue
		}
		fmt.Fprintf(&sb, "%s %.1f %s (%s) vs %s %.1f %s (%s), ratio %s",
			f.Lift1Name, f.Lift1Weight, f.Lift1Unit, f.Lift1Level,
			f.Lift2Name, f.Lift2Weight, f.Lift2Unit, f.Lift2Level,
			f.Ratio,
		)
		if f.TargetRatio != "" {
			fmt.Fprintf(&sb, ", target %s, balanced range %s", f.TargetRatio, f.BalancedRange)
		}
		fmt.Fprintf(&sb, ", classification: %s\n", f.Classification)
	}
	sb.WriteString(promptInstructions)
	return sb.String()
}
