package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// driversCmd represents the drivers command
var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "Inspect loaded drivers",
	Long:  "Commands for inspecting loaded driver components and resolving driver names.",
}

// listDriversCmd represents the list command
var listDriversCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded driver components",
	Long:  `Display the loaded driver components with their capability information.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := dbi.LoadedComponents().Names()
		sort.Strings(names)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPONENT\tCONSTRUCTOR\tDATABASE\tPORT\tPARADIGMS\tTRACKS CONNECTIONS")
		for _, name := range names {
			comp, ok := dbi.LoadedComponents().Lookup(name)
			if !ok {
				continue
			}
			for export := range comp.Exports {
				line := describeExport(name, export)
				fmt.Fprintln(w, line)
			}
		}
		return w.Flush()
	},
}

// describeExport joins a component export with its capability metadata, when
// the export matches a known constructor name.
func describeExport(component, export string) string {
	for _, id := range drivercaps.IDs() {
		caps := drivercaps.MustGet(id)
		if caps.Constructor != export {
			continue
		}
		paradigms := make([]string, 0, len(caps.Paradigms))
		for _, p := range caps.Paradigms {
			paradigms = append(paradigms, string(p))
		}
		port := "-"
		if caps.DefaultPort != 0 {
			port = fmt.Sprintf("%d", caps.DefaultPort)
		}
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%t",
			component, export, caps.Name, port, strings.Join(paradigms, ","), caps.TracksConnections)
	}
	return fmt.Sprintf("%s\t%s\t-\t-\t-\t-", component, export)
}

// resolveDriverCmd represents the resolve command
var resolveDriverCmd = &cobra.Command{
	Use:   "resolve [driver-name]",
	Short: "Resolve a driver name",
	Long:  `Resolve a driver name through the three-stage search and describe the result.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, err := dbi.Resolve(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dbi.Describe(drv))
		return nil
	},
}
