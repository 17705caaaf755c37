package sink

import (
	"fmt"
	"io"

	"github.com/broadmon/viewperiod/internal/core"
)

// WriteText renders each period in its historical single-line form, one
// record per line.
func WriteText(w io.Writer, periods []core.ViewingPeriod) error {
	for _, p := range periods {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}
