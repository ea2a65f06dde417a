package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/appserver-io/confnode/config"

	"github.com/spf13/cobra"
)

var jobsCmd = cobra.Command{
	Use:   "jobs",
	Short: "Display the cron jobs and their next activation",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := control.loader().Load()
		if err != nil {
			return err
		}

		now := time.Now()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, j := range root.Jobs() {
			next, err := config.NextRun(j, now)
			if err != nil {
				return err
			}
			script := ""
			if e := j.Execute(); e != nil {
				script = e.Script()
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", j.Name(), j.Schedule(), next.Format(time.RFC3339), script)
		}
		return w.Flush()
	},
}
