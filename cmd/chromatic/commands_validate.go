package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/colorutil"
	"github.com/xlc-dev/chromatic/internal/log"
	"github.com/xlc-dev/chromatic/internal/scheme"
)

// minLuminanceGap matches the separation extraction guarantees between
// background and foreground.
const minLuminanceGap = 0.4

var validateCmd = &cobra.Command{
	Use:   "validate <scheme>",
	Short: "Check a color scheme file",
	Long:  "Check that a scheme file has every slot as a valid hex color and report background/foreground contrast. Use - to read from stdin",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func init() {
	validateCmd.Flags().String("format", "", "Input format: json or yaml (default: from the file extension)")
}

type contrastReport struct {
	Background colorutil.RGB
	Foreground colorutil.RGB
	Ratio      float64
	Gap        float64
}

func (r contrastReport) OK() bool {
	return r.Gap >= minLuminanceGap
}

func runValidate(cmd *cobra.Command, args []string) {
	formatName, _ := cmd.Flags().GetString("format")

	s, err := readScheme(appFs, cmd.InOrStdin(), args[0], formatName)
	if err != nil {
		log.Fatalf("Invalid scheme: %v", err)
	}

	report, err := checkContrast(s)
	if err != nil {
		log.Fatalf("Invalid scheme: %v", err)
	}
	writeReport(cmd.OutOrStdout(), report)

	if !report.OK() {
		log.Warnf("Luminance gap %.2f is below %.2f", report.Gap, minLuminanceGap)
	}
}

func readScheme(fs afero.Fs, stdin io.Reader, path, formatName string) (scheme.Scheme, error) {
	format := scheme.FormatForPath(path)
	if formatName != "" {
		f, err := scheme.ParseFormat(formatName)
		if err != nil {
			return scheme.Scheme{}, err
		}
		format = f
	}

	if path != stdinPath {
		if formatName == "" {
			return scheme.Load(fs, path)
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return scheme.Scheme{}, err
		}
		return scheme.Decode(data, format)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return scheme.Scheme{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return scheme.Decode(data, format)
}

func checkContrast(s scheme.Scheme) (contrastReport, error) {
	bg, err := s.Color("background")
	if err != nil {
		return contrastReport{}, err
	}
	fg, err := s.Color("foreground")
	if err != nil {
		return contrastReport{}, err
	}
	return contrastReport{
		Background: bg,
		Foreground: fg,
		Ratio:      colorutil.ContrastRatio(bg, fg),
		Gap:        colorutil.Luminance(fg) - colorutil.Luminance(bg),
	}, nil
}

func writeReport(w io.Writer, r contrastReport) {
	mark := "✓"
	if !r.OK() {
		mark = "!"
	}
	fmt.Fprintf(w, "%s Scheme is valid\n", mark)
	fmt.Fprintf(w, "  background     %s\n", r.Background.Hex())
	fmt.Fprintf(w, "  foreground     %s\n", r.Foreground.Hex())
	fmt.Fprintf(w, "  contrast ratio %.2f:1\n", r.Ratio)
	fmt.Fprintf(w, "  luminance gap  %.3f\n", r.Gap)
	fmt.Fprintf(w, "  sample         %s\n", textSample(r.Background.Hex(), r.Foreground.Hex()))
}
