package emit

import (
	"fmt"

	billy "github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"

	"github.com/panelworks/lcdgen/api"
)

// WriteYAML serializes the manifest as YAML.
func WriteYAML(fs billy.Filesystem, name string, m *api.Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return writeFile(fs, name, data)
}

// WriteJSON serializes the manifest as indented JSON.
func WriteJSON(fs billy.Filesystem, name string, m *api.Manifest) error {
	data, err := oj.Marshal(m, 2)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return writeFile(fs, name, data)
}

func writeFile(fs billy.Filesystem, name string, data []byte) error {
	f, err := fs.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
