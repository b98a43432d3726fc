package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Engine renders generation units through the fixed model template.
//
// The template and its helper set are parsed once at construction; a
// constructed Engine is read-only. Callers hand it to the driver
// explicitly instead of reaching for a process-wide singleton.
type Engine struct {
	tmpl *template.Template
}

// NewEngine parses the model template with the sprig helper set registered.
// Missing template keys are hard errors.
func NewEngine() *Engine {
	tmpl := template.Must(
		template.New("model").
			Funcs(sprig.FuncMap()).
			Option("missingkey=error").
			Parse(modelTemplate),
	)

	return &Engine{tmpl: tmpl}
}

// Render executes the model template for one generation unit. The output
// is raw template text; the emit layer runs source normalization.
func (e *Engine) Render(data *ModelData) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing model template for %s: %w", data.ModelName, err)
	}

	return buf.Bytes(), nil
}
