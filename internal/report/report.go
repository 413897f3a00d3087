// Package report renders final account snapshots as delimited output.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/iulianbarbu/transaction-processor/internal/engine"
)

// Header is the first line of every report.
const Header = "client,available,held,total,locked"

// Write renders one row per result, in the given order, with balances
// rounded to 4 decimal places. Rounding happens only here; the engine
// computes with full float64 precision.
func Write(w io.Writer, results []engine.Result) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(buf, Header); err != nil {
		return err
	}

	for _, res := range results {
		snap := res.Snapshot

		_, err := fmt.Fprintf(buf, "%d,%.4f,%.4f,%.4f,%t\n",
			snap.ID, snap.Available, snap.Held, snap.Total, snap.Locked)
		if err != nil {
			return err
		}
	}

	return buf.Flush()
}
