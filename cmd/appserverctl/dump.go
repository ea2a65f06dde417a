package main

import (
	"fmt"

	"github.com/appserver-io/confnode/config"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dumpOpt = struct {
	Format string
	Out    string
}{}

var dumpCmd = cobra.Command{
	Use:   "dump",
	Short: "Print the merged configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := control.loader().Load()
		if err != nil {
			return err
		}

		if dumpOpt.Out == "" {
			b, err := config.Marshal(root, dumpOpt.Format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		}

		docs, err := config.Export(root, dumpOpt.Format)
		if err != nil {
			return err
		}
		dir, written, err := config.NewFileSystemWriter(afero.NewOsFs()).Commit(dumpOpt.Out, docs)
		if err != nil {
			return err
		}
		for _, wf := range written {
			zap.L().Info("Exported configuration", zap.String("file", wf.FullPath), zap.Bool("changed", wf.Changed))
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d file(s) to %s\n", len(written), dir)
		return nil
	},
}

func init() {
	flags := dumpCmd.Flags()
	flags.StringVarP(&dumpOpt.Format, "format", "f", config.FormatXML, "Output format: xml, yaml or json")
	flags.StringVarP(&dumpOpt.Out, "out", "o", "", "Write appserver.<format> to this directory instead of stdout")
}
