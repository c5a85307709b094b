// Gsetwacom inspects and changes GSettings configuration for graphics
// tablets, styli and tablet pad controls, and can map a tablet to a monitor
// of the current display configuration.
//
// Usage:
//
//	gsetwacom [command] [flags]
//
// See 'gsetwacom --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gsetwacom/gsetwacom/internal/logging"
	"github.com/gsetwacom/gsetwacom/internal/settings"
	"github.com/gsetwacom/gsetwacom/internal/store"
	"github.com/gsetwacom/gsetwacom/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	verbosity int
	quiet     bool
	dryRun    bool
)

// log and cfgStore are built once per invocation by the root command and
// passed explicitly to every collaborator.
var (
	log      *zap.Logger
	cfgStore store.Store
)

var rootCmd = &cobra.Command{
	Use:   "gsetwacom",
	Short: "Configure graphics tablets via GSettings",
	Long: `A utility to show and change configuration for graphics tablets.

Tablet, stylus and pad-control settings are stored in GSettings under
per-device paths; this tool resolves device identifiers to those paths,
validates keys against the installed schemas and writes values in place.
Settings take effect in the compositor immediately.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(verbosity, quiet)
		if err != nil {
			return err
		}
		log = logger
		if dryRun {
			cfgStore = store.NewMemory(log, settings.DefaultSchemaKeys())
		} else {
			cfgStore = store.NewGSettings(log)
		}
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log errors")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log writes instead of applying them")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gsetwacom %s\n", version.Full())
	},
}
