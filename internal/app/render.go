package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/confit-dev/confit/internal/log"
	"github.com/confit-dev/confit/internal/pkgdir"
	"github.com/confit-dev/confit/internal/properties"
	"github.com/confit-dev/confit/internal/template"
	"github.com/confit-dev/confit/internal/template/engine"
)

// packageState is the outcome of the structural policy decision for a
// render run.
type packageState int

const (
	// stateRender renders the catalog against the loaded properties.
	stateRender packageState = iota
	// stateEmpty succeeds with nothing to do.
	stateEmpty
	// stateMissingProperties aborts: templates exist but no property
	// document does.
	stateMissingProperties
)

// Render decision names reported by Check.
const (
	StateRender            = "render"
	StateNothingToDo       = "nothing to do"
	StateMissingProperties = "missing properties"
)

// String returns a human-readable state name.
func (s packageState) String() string {
	switch s {
	case stateRender:
		return StateRender
	case stateEmpty:
		return StateNothingToDo
	case stateMissingProperties:
		return StateMissingProperties
	default:
		return "unknown"
	}
}

// classifyPackage applies the structural policy for a render run: a
// present property document always renders (possibly zero templates),
// an absent one is valid only while the package has no templates.
func classifyPackage(propsPresent bool, templateCount int) packageState {
	switch {
	case propsPresent:
		return stateRender
	case templateCount == 0:
		return stateEmpty
	default:
		return stateMissingProperties
	}
}

// RenderOptions holds options for the merge+render operation.
type RenderOptions struct {
	// PackagePath is the package directory to render.
	PackagePath string
}

// RenderResult holds the outcome of a render run.
type RenderResult struct {
	// Package is the normalized package directory.
	Package string
	// TemplatesRendered is the number of artifacts written.
	TemplatesRendered int
	// Outputs are the artifact paths written, in render order.
	Outputs []string
}

// Render runs the merge+render operation: it loads the package's
// property document, enumerates its templates, and renders each one
// against the loaded properties. Rendering proceeds in catalog order
// and aborts on the first failure, leaving earlier outputs in place.
func Render(ctx context.Context, opts RenderOptions) (*RenderResult, error) {
	logger := log.WithComponent("pipeline")

	pkg, err := pkgdir.Resolve(opts.PackagePath)
	if err != nil {
		return nil, NewStructuralError("invalid package directory", err)
	}

	store := properties.NewStore(pkg.PropertiesPath())
	doc, err := store.Load()
	if err != nil {
		return nil, NewIOError("cannot load properties", err)
	}
	if doc.Warn != nil {
		logger.Warn().Err(doc.Warn).Str("package", pkg.Root()).Msg("ignoring malformed property document")
	}

	files, err := template.List(pkg)
	if err != nil {
		return nil, NewIOError("cannot enumerate templates", err)
	}

	state := classifyPackage(doc.Present, len(files))
	logger.Debug().
		Str("package", pkg.Root()).
		Bool("properties", doc.Present).
		Int("templates", len(files)).
		Stringer("state", state).
		Msg("classified package")

	result := &RenderResult{Package: pkg.Root()}

	switch state {
	case stateEmpty:
		return result, nil
	case stateMissingProperties:
		return nil, NewStructuralError(fmt.Sprintf("package %s has templates but no properties document", pkg.Root()), nil)
	}

	if len(files) == 0 {
		return result, nil
	}

	eng, err := engine.NewPongo2(pkg.ConfigDir())
	if err != nil {
		return nil, NewIOError("cannot initialize template engine", err)
	}
	renderer := template.NewRenderer(eng)

	for _, file := range files {
		if err := renderer.Render(file, doc.Values); err != nil {
			return nil, classifyRenderError(err)
		}
		logger.Debug().Str("template", file.Name).Str("output", file.OutputPath).Msg("rendered template")
		result.TemplatesRendered++
		result.Outputs = append(result.Outputs, file.OutputPath)
	}

	return result, nil
}

// classifyRenderError maps a renderer failure onto the error taxonomy:
// expansion failures are parse errors, read and write failures are I/O
// errors.
func classifyRenderError(err error) *AppError {
	var renderErr *template.RenderError
	if errors.As(err, &renderErr) && renderErr.Stage == template.StageExpand {
		return NewParseError("template rendering failed", err)
	}
	return NewIOError("template rendering failed", err)
}
