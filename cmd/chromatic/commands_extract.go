package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/colorutil"
	"github.com/xlc-dev/chromatic/internal/config"
	"github.com/xlc-dev/chromatic/internal/extract"
	"github.com/xlc-dev/chromatic/internal/imageload"
	"github.com/xlc-dev/chromatic/internal/log"
	"github.com/xlc-dev/chromatic/internal/scheme"
	"gopkg.in/yaml.v3"
)

const stdinPath = "-"

var extractCmd = &cobra.Command{
	Use:   "extract <image>...",
	Short: "Generate a color scheme from images",
	Long:  "Sample an image, cluster its colors and map them onto a color scheme. Use - to read the image from stdin",
	Args:  cobra.MinimumNArgs(1),
	Run:   runExtract,
}

func init() {
	extractCmd.Long += fmt.Sprintf(". Supported formats: %s", strings.Join(imageload.Formats, ", "))
	addExtractFlags(extractCmd)
}

func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("colors", "k", extract.DefaultColorCount, "Number of colors to cluster")
	cmd.Flags().Int("iterations", extract.DefaultMaxIterations, "Maximum clustering iterations")
	cmd.Flags().Int("sample-target", extract.DefaultSampleTarget, "Approximate number of pixels to sample")
	cmd.Flags().Int64("seed", 0, "Random seed for reproducible output (0 picks one)")
	cmd.Flags().String("format", "json", "Output format: json or yaml")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().Bool("palette", false, "Print the clustered palette instead of the scheme")
}

func runExtract(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	cfg, err = applyExtractFlags(cmd, cfg)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	results, err := extractAll(cmd, args, cfg.Extract)
	if err != nil {
		log.Fatalf("Error extracting colors: %v", err)
	}

	asPalette, _ := cmd.Flags().GetBool("palette")
	output, _ := cmd.Flags().GetString("output")

	format := cfg.OutputFormat()
	if output != "" && !cmd.Flags().Changed("format") {
		format = scheme.FormatForPath(output)
	}

	data, err := renderResults(results, asPalette, format)
	if err != nil {
		log.Fatalf("Error encoding output: %v", err)
	}

	if err := writeOutput(appFs, cmd.OutOrStdout(), output, data); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
}

// applyExtractFlags overrides config values with the flags the user set.
func applyExtractFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("colors") {
		cfg.Extract.ColorCount, _ = flags.GetInt("colors")
	}
	if flags.Changed("iterations") {
		cfg.Extract.MaxIterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("sample-target") {
		cfg.Extract.SampleTarget, _ = flags.GetInt("sample-target")
	}
	if flags.Changed("seed") {
		cfg.Extract.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	return cfg, cfg.Validate()
}

func extractAll(cmd *cobra.Command, args []string, opts extract.Options) ([]extract.Result, error) {
	if len(args) == 1 && args[0] == stdinPath {
		return extractReader(cmd.InOrStdin(), opts)
	}
	for _, a := range args {
		if a == stdinPath {
			return nil, fmt.Errorf("stdin (-) cannot be combined with other images")
		}
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return extract.ExtractFiles(ctx, appFs, args, opts)
}

func extractReader(r io.Reader, opts extract.Options) ([]extract.Result, error) {
	img, format, err := imageload.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	log.Debugf("Decoded %s image from stdin", format)

	palette := extract.New(opts).PaletteFromImage(img)
	return []extract.Result{{
		Path:    stdinPath,
		Palette: palette,
		Scheme:  extract.MapToScheme(palette),
	}}, nil
}

// renderResults encodes a single result bare, and several as an object keyed
// by path.
func renderResults(results []extract.Result, asPalette bool, format scheme.Format) ([]byte, error) {
	if !asPalette {
		if len(results) == 1 {
			return scheme.Encode(results[0].Scheme, format)
		}
		byPath := make(map[string]scheme.Scheme, len(results))
		for _, r := range results {
			byPath[r.Path] = r.Scheme
		}
		return encodeValue(byPath, format)
	}

	if len(results) == 1 {
		return encodeValue(hexList(results[0].Palette), format)
	}
	byPath := make(map[string][]string, len(results))
	for _, r := range results {
		byPath[r.Path] = hexList(r.Palette)
	}
	return encodeValue(byPath, format)
}

func hexList(colors []colorutil.RGB) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

func encodeValue(v any, format scheme.Format) ([]byte, error) {
	if format == scheme.FormatYAML {
		return yaml.Marshal(v)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func writeOutput(fs afero.Fs, stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return err
	}
	log.Infof("Wrote %s", path)
	return nil
}
