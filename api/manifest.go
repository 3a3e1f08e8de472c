// Package api defines the externally-visible output contract: the manifest
// consumed by the HTML runtime and any other downstream renderer.
package api

// Manifest is the root of the serialized output.
type Manifest struct {
	// SourceFile is the name of the input document.
	SourceFile string `yaml:"source_file" json:"source_file"`
	// Canvas geometry of the source document.
	DocumentWidth  int `yaml:"document_width" json:"document_width"`
	DocumentHeight int `yaml:"document_height" json:"document_height"`
	// Layers lists every extracted layer in document order.
	Layers []LayerRecord `yaml:"layers" json:"layers"`
	// Widgets lists classified widgets in document order.
	Widgets []WidgetRecord `yaml:"widgets,omitempty" json:"widgets,omitempty"`
}

// LayerRecord places one extracted layer image on the canvas.
type LayerRecord struct {
	Filename string `yaml:"filename" json:"filename"`
	// Name is the display name, prefix tag stripped.
	Name string `yaml:"name" json:"name"`
	// OriginalName is the raw layer name as stored in the document.
	OriginalName string `yaml:"original_name,omitempty" json:"original_name,omitempty"`
	// FolderPath holds ancestor display names, outermost first.
	FolderPath []string `yaml:"folder_path,omitempty" json:"folder_path,omitempty"`
	X          int      `yaml:"x" json:"x"`
	Y          int      `yaml:"y" json:"y"`
	Width      int      `yaml:"width" json:"width"`
	Height     int      `yaml:"height" json:"height"`
}

// WidgetRecord is one interactive control. Type is one of toggle, digit7,
// digit16, number, string, range; which fields are set depends on it.
type WidgetRecord struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
	// HasDecimal marks digit widgets that carry a decimal point layer.
	HasDecimal bool `yaml:"has_decimal,omitempty" json:"has_decimal,omitempty"`
	// Layers: member filenames for toggle/range, positional segment
	// filenames for digit widgets (point layer last when HasDecimal).
	Layers []string `yaml:"layers,omitempty" json:"layers,omitempty"`
	// Digits: ordered slots of number and string widgets.
	Digits []DigitRecord `yaml:"digits,omitempty" json:"digits,omitempty"`
	// Count: range member total.
	Count int `yaml:"count,omitempty" json:"count,omitempty"`
}

// DigitRecord is one digit slot of a number or string widget.
type DigitRecord struct {
	Name       string   `yaml:"name" json:"name"`
	Segments   int      `yaml:"segments" json:"segments"`
	HasDecimal bool     `yaml:"has_decimal" json:"has_decimal"`
	Layers     []string `yaml:"layers" json:"layers"`
}
