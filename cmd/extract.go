package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/panelworks/lcdgen/internal/classify"
	"github.com/panelworks/lcdgen/internal/emit"
	"github.com/panelworks/lcdgen/internal/index"
	"github.com/panelworks/lcdgen/internal/project"
	"github.com/panelworks/lcdgen/internal/psdfile"
)

var (
	extractFormat string
	extractIndex  bool
	noHTML        bool
	noAssets      bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "Manifest format: yaml, json or both")
	extractCmd.Flags().BoolVar(&extractIndex, "index", false, "Also write a SQLite catalog (catalog.db)")
	extractCmd.Flags().BoolVar(&noHTML, "no-html", false, "Skip the HTML preview page")
	extractCmd.Flags().BoolVar(&noAssets, "no-assets", false, "Skip PNG asset extraction (structure only)")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [input.psb] [output-dir]",
	Short: "Extract widgets, assets and manifest from a PSB/PSD document",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		input := args[0]
		outDir := cfg.OutputDir
		if len(args) == 2 {
			outDir = args[1]
		}
		if outDir == "" {
			base := filepath.Base(input)
			outDir = strings.TrimSuffix(base, filepath.Ext(base))
		}

		format := cfg.Format
		if extractFormat != "" {
			format = extractFormat
		}
		switch format {
		case "yaml", "json", "both":
		default:
			return fmt.Errorf("format must be yaml, json or both, got %q", format)
		}
		writeIndex := extractIndex || cfg.Index
		skipHTML := noHTML || cfg.NoHTML
		skipAssets := noAssets || cfg.NoAssets

		start := time.Now()
		reader := &psdfile.Reader{SkipPixels: skipAssets}
		doc, err := reader.Read(input)
		if err != nil {
			return err
		}
		log.Debug("decoded document",
			"source", doc.SourceFile, "width", doc.Width, "height", doc.Height)

		res, diags := classify.Classify(doc.Layers)
		placed, collisions := project.Flatten(doc.Layers)
		manifest := project.Manifest(doc, placed, res)

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		fs := osfs.New(outDir)

		if !skipAssets {
			n, err := emit.WriteAssets(fs, placed, log)
			if err != nil {
				return err
			}
			log.Info("wrote assets", "count", n, "dir", outDir)
		}
		if format == "yaml" || format == "both" {
			if err := emit.WriteYAML(fs, "manifest.yaml", manifest); err != nil {
				return err
			}
		}
		if format == "json" || format == "both" {
			if err := emit.WriteJSON(fs, "manifest.json", manifest); err != nil {
				return err
			}
		}
		if !skipHTML {
			defaults := map[string]emit.NumberDefault{}
			for _, n := range cfg.Numbers {
				defaults[n.Name] = emit.NumberDefault{
					LeadingZeros:  n.LeadingZeros,
					DecimalPlaces: n.Places(),
				}
			}
			opts := emit.PreviewOptions{NumberDefaults: defaults}
			if err := emit.WriteHTML(fs, "preview.html", manifest, opts); err != nil {
				return err
			}
		}
		if writeIndex {
			w, err := index.NewWriter(filepath.Join(outDir, "catalog.db"))
			if err != nil {
				return err
			}
			if err := w.Write(manifest); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
		}

		log.Info("extraction complete",
			"widgets", len(manifest.Widgets),
			"layers", len(manifest.Layers),
			"elapsed", time.Since(start))

		// Structural problems never abort the run; everything extractable was
		// written above. They do fail the exit code so CI notices.
		for _, d := range diags {
			log.Warn("structural error", "path", strings.Join(d.Path, "/"), "msg", d.Msg)
		}
		for _, c := range collisions {
			log.Warn("filename collision",
				"filename", c.Filename, "layers", strings.Join(c.Paths, ", "))
		}
		var failures []error
		if err := diags.ErrOrNil(); err != nil {
			failures = append(failures, err)
		}
		if err := collisions.ErrOrNil(); err != nil {
			failures = append(failures, err)
		}
		return errors.Join(failures...)
	},
}
