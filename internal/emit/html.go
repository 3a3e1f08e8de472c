package emit

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	billy "github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg/oj"

	"github.com/panelworks/lcdgen/api"
	"github.com/panelworks/lcdgen/internal/segment"
)

//go:embed preview.tmpl
var previewTemplate string

// NumberDefault seeds the preview controls of one number widget.
type NumberDefault struct {
	LeadingZeros  bool `json:"leading_zeros"`
	DecimalPlaces int  `json:"decimal_places"`
}

// PreviewOptions configures the generated HTML page.
type PreviewOptions struct {
	Title string
	// NumberDefaults maps widget name to its initial formatting controls.
	NumberDefaults map[string]NumberDefault
}

// WriteHTML renders the self-contained preview page: the manifest and both
// segment encoding tables are embedded as JSON so the page needs nothing but
// the PNG assets next to it.
func WriteHTML(fs billy.Filesystem, name string, m *api.Manifest, opts PreviewOptions) error {
	manifestJSON, err := oj.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	segmentsJSON, err := oj.Marshal(segmentContract())
	if err != nil {
		return fmt.Errorf("marshal segment tables: %w", err)
	}
	defaults := opts.NumberDefaults
	if defaults == nil {
		defaults = map[string]NumberDefault{}
	}
	defaultsJSON, err := oj.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = m.SourceFile
	}

	tmpl, err := template.New("preview").Parse(previewTemplate)
	if err != nil {
		return fmt.Errorf("parse preview template: %w", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Title":    title,
		"Manifest": string(manifestJSON),
		"Segments": string(segmentsJSON),
		"Defaults": string(defaultsJSON),
	})
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return writeFile(fs, name, buf.Bytes())
}

// segmentContract is the machine-readable form of the encoding tables, the
// same contract any downstream renderer must reproduce.
func segmentContract() map[string]any {
	tables := map[string]any{}
	order := map[string]any{}
	for _, a := range []segment.Alphabet{segment.Seven, segment.Sixteen} {
		key := fmt.Sprintf("%d", a.Size())
		order[key] = a.LayerOrder()
		table := map[string][]string{}
		for ch, segs := range segment.Table(a) {
			table[string(ch)] = segs
		}
		tables[key] = table
	}
	return map[string]any{
		"layer_order": order,
		"tables":      tables,
		"point":       segment.PointName,
	}
}
