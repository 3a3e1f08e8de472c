package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/panelworks/lcdgen/api"
	"github.com/panelworks/lcdgen/internal/server"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8473", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [output-dir]",
	Short: "Serve an extracted output directory with a render API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		dir := args[0]

		m, err := loadManifest(dir)
		if err != nil {
			return err
		}

		s := server.New(dir, m, log)
		log.Info("serving", "dir", dir, "addr", serveAddr, "widgets", len(m.Widgets))
		return http.ListenAndServe(serveAddr, s)
	},
}

// loadManifest reads manifest.yaml, falling back to manifest.json.
func loadManifest(dir string) (*api.Manifest, error) {
	var m api.Manifest
	if data, err := os.ReadFile(filepath.Join(dir, "manifest.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest.yaml: %w", err)
		}
		return &m, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return nil, fmt.Errorf("no manifest in %s: %w", dir, err)
	}
	if err := oj.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest.json: %w", err)
	}
	return &m, nil
}
