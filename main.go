package main

import (
	"fmt"
	"os"

	"derbyicon/log"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:               "derbyicon",
	Short:             "Generate the Derby Disorder app icons as PNG",
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) { log.Close() },
	RunE:              runGenerate,
}

func init() {
	rootCmd.PersistentFlags().String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	addGenerateFlags(rootCmd)
}

// setupLogging resolves the log directory early. Failing to open the log is
// only a warning; icons are still written.
func setupLogging(cmd *cobra.Command, _ []string) {
	logPathFlag, _ := cmd.Flags().GetString("logpath")
	logPath, err := log.ResolveDir(logPathFlag)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to resolve log directory: %v\n", err)
		return
	}
	log.SetDir(logPath)

	if err := log.Init(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log in %s: %v\n", log.Dir(), err)
		return
	}
	log.RunStart(version, cmd.Name())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%s", err)
		log.Close()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
