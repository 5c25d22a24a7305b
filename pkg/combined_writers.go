package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans writes out to all writers. A failing writer does not
// stop the others; its error is collected and returned.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		errs      error
		succeeded int
	)
	for _, w := range cw.Writers {
		if _, err := w.Write(p); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		succeeded++
	}

	if succeeded == 0 && len(cw.Writers) > 0 {
		return 0, errs
	}
	return len(p), errs
}
