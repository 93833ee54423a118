package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/log"
	"github.com/xlc-dev/chromatic/internal/scheme"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List bundled color schemes",
	Long:  "List the color schemes bundled with chromatic",
	Args:  cobra.NoArgs,
	Run:   runPresetsList,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a bundled color scheme",
	Long:  "Print a bundled color scheme. Names match case-insensitively, with dashes standing in for spaces",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsShow,
}

func init() {
	presetsShowCmd.Flags().String("format", "json", "Output format: json or yaml")
	presetsShowCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	presetsCmd.AddCommand(presetsShowCmd)
}

func runPresetsList(cmd *cobra.Command, args []string) {
	presets, err := scheme.Presets()
	if err != nil {
		log.Fatalf("Error loading presets: %v", err)
	}
	if err := writePresetList(cmd.OutOrStdout(), presets); err != nil {
		log.Fatalf("Error writing presets: %v", err)
	}
}

func writePresetList(w io.Writer, presets []scheme.Preset) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Scheme.Background, p.Description, paletteSwatch(p.Scheme))
	}
	return tw.Flush()
}

func runPresetsShow(cmd *cobra.Command, args []string) {
	formatName, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := scheme.ParseFormat(formatName)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if output != "" && !cmd.Flags().Changed("format") {
		format = scheme.FormatForPath(output)
	}

	if err := showPreset(appFs, cmd.OutOrStdout(), args[0], format, output); err != nil {
		log.Fatalf("%v", err)
	}
}

// showPreset writes the named preset to output, or to stdout when output is
// empty.
func showPreset(fs afero.Fs, stdout io.Writer, name string, format scheme.Format, output string) error {
	p, err := scheme.FindPreset(name)
	if err != nil {
		return err
	}

	if output != "" {
		if err := scheme.Save(fs, output, p.Scheme, format); err != nil {
			return fmt.Errorf("error writing preset: %w", err)
		}
		log.Infof("Wrote %s to %s", p.Name, output)
		return nil
	}

	data, err := scheme.Encode(p.Scheme, format)
	if err != nil {
		return fmt.Errorf("error encoding preset: %w", err)
	}
	if err := writeOutput(fs, stdout, "", data); err != nil {
		return fmt.Errorf("error writing preset: %w", err)
	}
	return nil
}
