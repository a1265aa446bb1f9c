package output

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// structuredRenderer encodes every report as a single document
type structuredRenderer struct {
	encode func(v any) error
}

func (r *structuredRenderer) RenderReport(report Report) error {
	return r.write(report)
}

func (r *structuredRenderer) RenderProduct(product Product) error {
	return r.write(product)
}

func (r *structuredRenderer) RenderDuplicates(report DuplicateReport) error {
	return r.write(report)
}

func (r *structuredRenderer) write(v any) error {
	if err := r.encode(v); err != nil {
		return writeErr(err)
	}
	return nil
}

func newJSONRenderer(w io.Writer) Renderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &structuredRenderer{encode: encoder.Encode}
}

func newYAMLRenderer(w io.Writer) Renderer {
	return &structuredRenderer{encode: func(v any) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}}
}

func newTOMLRenderer(w io.Writer) Renderer {
	return &structuredRenderer{encode: func(v any) error {
		encoder := toml.NewEncoder(w)
		encoder.SetIndentTables(true)
		return encoder.Encode(v)
	}}
}
