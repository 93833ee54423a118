package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/config"
	"github.com/xlc-dev/chromatic/internal/log"
)

var Version = "dev"

// appFs backs every file the CLI reads or writes.
var appFs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "chromatic",
	Short: "Generate terminal color schemes from images",
	Long:  "Extract a dominant-color palette from an image and map it onto a 21-slot terminal and window-manager color scheme",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log.SetVerbose(verbose)
	},
	SilenceUsage: true,
	Version:      Version,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/chromatic/config.yaml)")

	rootCmd.AddCommand(extractCmd, presetsCmd, validateCmd)
}

// loadConfig reads --config when given, otherwise the default location if it
// exists.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(appFs, path)
	}
	return config.LoadOrDefault(appFs, config.DefaultPath())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
