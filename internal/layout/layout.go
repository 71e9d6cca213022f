// Package layout holds the declarative badge-layout document: which badge
// fields are shown, where, and how. One document exists at a time; the
// designer replaces it wholesale and the badge renderer applies it read-only.
package layout

// Canonical badge field names. Documents may mention other names; the
// renderer ignores them.
const (
	FieldName     = "field-name"
	FieldCompany  = "field-company"
	FieldCategory = "field-category"
	FieldBarcode  = "field-barcode"
)

// KnownFields lists renderable fields in their badge stacking order.
var KnownFields = []string{FieldName, FieldCompany, FieldCategory, FieldBarcode}

// Size is the badge canvas in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FieldConfig positions one badge field. Free-position convention: every
// field carries an explicit left/top offset from the badge origin.
type FieldConfig struct {
	Left     int    `json:"left"`
	Top      int    `json:"top"`
	Visible  bool   `json:"visible"`
	FontSize int    `json:"fontSize,omitempty"`
	Align    string `json:"align,omitempty"`
}

// Document is the persisted layout.
type Document struct {
	Size   Size                   `json:"size"`
	Fields map[string]FieldConfig `json:"fields"`
}

// Default returns the built-in layout used until a designer save exists,
// and to fill fields a saved document omits.
func Default() *Document {
	return &Document{
		Size: Size{Width: 350, Height: 220},
		Fields: map[string]FieldConfig{
			FieldName:     {Left: 20, Top: 30, Visible: true, FontSize: 24, Align: "left"},
			FieldCompany:  {Left: 20, Top: 70, Visible: true, FontSize: 16, Align: "left"},
			FieldCategory: {Left: 20, Top: 100, Visible: true, FontSize: 14, Align: "left"},
			FieldBarcode:  {Left: 20, Top: 140, Visible: true, FontSize: 18, Align: "left"},
		},
	}
}

// RenderField is one resolved, visible badge field.
type RenderField struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Left     int    `json:"left"`
	Top      int    `json:"top"`
	FontSize int    `json:"fontSize"`
	Align    string `json:"align"`
}

// Apply resolves the document against the given field values. Known fields
// missing from the document take defaults, unknown document entries are
// dropped, and fields with visible=false are omitted entirely.
func Apply(doc *Document, values map[string]string) []RenderField {
	if doc == nil {
		doc = Default()
	}
	defaults := Default().Fields

	out := make([]RenderField, 0, len(KnownFields))
	for _, name := range KnownFields {
		conf, ok := doc.Fields[name]
		if !ok {
			conf = defaults[name]
		}
		if !conf.Visible {
			continue
		}
		if conf.FontSize == 0 {
			conf.FontSize = defaults[name].FontSize
		}
		if conf.Align == "" {
			conf.Align = defaults[name].Align
		}
		out = append(out, RenderField{
			Name:     name,
			Value:    values[name],
			Left:     conf.Left,
			Top:      conf.Top,
			FontSize: conf.FontSize,
			Align:    conf.Align,
		})
	}
	return out
}
