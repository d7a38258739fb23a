package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:          "itemstore",
		Short:        "Two-level bucketed item store",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(os.Stderr)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newDemoCmd())
	return rootCmd
}
