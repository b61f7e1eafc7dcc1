package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTypesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOID\tGO TYPE")
			for _, t := range opts.typeMap.Types() {
				oid := "-"
				if t.OID != 0 {
					oid = fmt.Sprint(t.OID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, oid, t.GoType())
			}
			return w.Flush()
		},
	}
}
