package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/sqltype"
)

// datatypeCmd represents the datatype command
var datatypeCmd = &cobra.Command{
	Use:   "datatype [driver-name]",
	Short: "Show type mappings for a driver",
	Long: `Display how common values map to column types for a driver.
Without a driver name the default SQL-92 policy is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var recv interface{}
		label := "default (SQL-92)"
		if len(args) == 1 {
			drv, err := dbi.Resolve(args[0])
			if err != nil {
				return err
			}
			recv = drv
			label = args[0]
		}

		samples := []struct {
			name  string
			value interface{}
		}{
			{"integer", []int{1, 2, 3}},
			{"logical", []bool{true, false}},
			{"numeric", []float64{1.5, 2.5}},
			{"character", []string{"a", "b"}},
			{"date", []sqltype.Date{sqltype.DateOf(time.Now())}},
			{"timestamp", []time.Time{time.Now()}},
			{"elapsed", []time.Duration{time.Second}},
			{"raw", [][]byte{{0x01}}},
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Type mapping for %s:\n", label)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, s := range samples {
			typ, err := dbi.DataType(recv, s.value)
			if err != nil {
				typ = "(" + err.Error() + ")"
			}
			fmt.Fprintf(w, "%s\t%s\n", s.name, typ)
		}
		return w.Flush()
	},
}
