package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var paramsCmd = cobra.Command{
	Use:   "params [name]",
	Short: "Display the effective value of the root params",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := control.loader().Load()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			p, ok := root.Param(args[0])
			if !ok {
				return fmt.Errorf("param %q is not set", args[0])
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.String())
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, name := range root.ParamNames() {
			p, _ := root.Param(name)
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.Type(), p.String())
		}
		return w.Flush()
	},
}
