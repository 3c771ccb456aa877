package chainbench

import (
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"go.llib.dev/frameless/pkg/cli"
)

// WriteTable prints the results as an aligned table.
func WriteTable(w io.Writer, results []Result) error {
	table := [][]string{{"VARIANT", "WORKLOAD", "SIZE", "ROUNDS", "PER OP", "THROUGHPUT"}}
	for _, r := range results {
		table = append(table, []string{
			string(r.Variant),
			string(r.Workload),
			humanize.Comma(int64(r.Size)),
			strconv.Itoa(r.Rounds),
			r.PerOp.String(),
			humanize.SIWithDigits(r.Throughput, 2, "ops/s"),
		})
	}
	return cli.FPrintTable(w, table, cli.TablePadding(2))
}

// WriteHistory prints one line per stored run with its fastest case.
func WriteHistory(w io.Writer, runs []Run) error {
	table := [][]string{{"ID", "STARTED", "CASES", "FASTEST"}}
	for _, run := range runs {
		fastest := "-"
		if best, ok := run.Fastest(); ok {
			fastest = string(best.Variant) + "/" + string(best.Workload) + " " +
				humanize.SIWithDigits(best.Throughput, 2, "ops/s")
		}
		table = append(table, []string{
			run.ID,
			run.StartedAt.UTC().Format(time.RFC3339),
			humanize.Comma(int64(len(run.Results))),
			fastest,
		})
	}
	return cli.FPrintTable(w, table, cli.TablePadding(2))
}
