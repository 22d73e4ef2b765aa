package engine

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/flosch/pongo2/v6"
)

// identifierPattern matches context keys the template language can
// actually reference.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Pongo2 expands {{name}}-style placeholders using the pongo2 template
// engine.
type Pongo2 struct {
	set *pongo2.TemplateSet
}

var _ Engine = (*Pongo2)(nil)

// NewPongo2 creates a Pongo2 engine. A non-empty baseDir must name an
// existing directory; it is used to resolve include and extends
// references between templates. With an empty baseDir such references
// resolve against the working directory.
func NewPongo2(baseDir string) (*Pongo2, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(baseDir)
	if err != nil {
		return nil, fmt.Errorf("create template loader for %s: %w", baseDir, err)
	}

	return &Pongo2{set: pongo2.NewSet("confit", loader)}, nil
}

// Expand implements Engine.
func (p *Pongo2) Expand(name string, src []byte, vars map[string]any) ([]byte, error) {
	tpl, err := p.set.FromBytes(src)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(toContext(vars), &buf); err != nil {
		return nil, fmt.Errorf("expand template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// toContext converts a property mapping into a pongo2 context. Keys
// that are not valid identifiers cannot be referenced by any
// placeholder, and pongo2 rejects them outright, so they are dropped.
func toContext(vars map[string]any) pongo2.Context {
	ctx := make(pongo2.Context, len(vars))
	for key, value := range vars {
		if !identifierPattern.MatchString(key) {
			continue
		}
		ctx[key] = value
	}
	return ctx
}
