package main

import (
	"fmt"
	"os"

	"github.com/appserver-io/confnode/config"
	"github.com/appserver-io/confnode/internal/zap/encoder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Control struct {
	Configuration string
	IncludeDir    string
	Params        string
	EnvFile       string
	Verbose       bool
	LogJSON       bool
}

var (
	control = &Control{}

	rootCmd = cobra.Command{
		Use:           "appserverctl",
		Short:         "Inspect and serve appserver configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return control.initLogger()
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&control.Configuration, "config", "c", "appserver.xml", "Configuration file")
	flags.StringVar(&control.IncludeDir, "include-dir", "", "Directory of configuration fragments merged after the main file")
	flags.StringVar(&control.Params, "params", "", "An optional ini file of param overrides")
	flags.StringVar(&control.EnvFile, "env-file", "", "An optional environment file")
	flags.BoolVarP(&control.Verbose, "verbose", "v", false, "Log debug messages")
	flags.BoolVar(&control.LogJSON, "log-json", false, "Log in json")

	rootCmd.AddCommand(&validateCmd)
	rootCmd.AddCommand(&dumpCmd)
	rootCmd.AddCommand(&paramsCmd)
	rootCmd.AddCommand(&jobsCmd)
	rootCmd.AddCommand(&serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (ctl *Control) initLogger() error {
	level := zapcore.InfoLevel
	if ctl.Verbose {
		level = zapcore.DebugLevel
	}
	log, err := encoder.NewLoggerConfig(level, ctl.LogJSON).Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(log)
	return nil
}

func (ctl *Control) loader(opts ...config.OptionFn) *config.Loader {
	if ctl.IncludeDir != "" {
		opts = append(opts, config.WithIncludeDir(ctl.IncludeDir))
	}
	if ctl.Params != "" {
		opts = append(opts, config.WithParamOverrides(ctl.Params))
	}
	if ctl.EnvFile != "" {
		opts = append(opts, config.WithEnvFile(ctl.EnvFile))
	}
	return config.NewLoader(ctl.Configuration, opts...)
}
