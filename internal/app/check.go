package app

import (
	"context"
	"os"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/confit-dev/confit/internal/pkgdir"
	"github.com/confit-dev/confit/internal/properties"
	"github.com/confit-dev/confit/internal/template"
	"github.com/confit-dev/confit/internal/template/engine"
)

// CheckOptions holds options for package inspection.
type CheckOptions struct {
	// PackagePath is the package directory to inspect.
	PackagePath string
}

// TemplateStatus describes one template's dry-run outcome.
type TemplateStatus struct {
	// Name is the template filename.
	Name string
	// OutputPath is where rendering would write the artifact.
	OutputPath string
	// OutputExists reports whether an artifact from a previous run is
	// present.
	OutputExists bool
	// Error is the expansion failure, empty when the template expands
	// cleanly.
	Error string
}

// CheckResult holds the outcome of a package inspection.
type CheckResult struct {
	// Package is the normalized package directory.
	Package string
	// PropertiesPresent reports whether a usable property document was
	// found.
	PropertiesPresent bool
	// PropertiesDegraded reports whether a malformed document was
	// ignored.
	PropertiesDegraded bool
	// PropertyKeys are the flattened property keys, sorted.
	PropertyKeys []string
	// State is the render decision for the package.
	State string
	// Templates holds one entry per template, in catalog order.
	Templates []TemplateStatus
	// TemplatesWithErrors is the number of templates that fail to
	// expand.
	TemplatesWithErrors int
}

// Check inspects a package without writing anything: it reports the
// render decision, the flattened property keys, and a dry-run expansion
// of every template. Unlike Render it does not stop at the first broken
// template, so a single run surfaces every expansion error.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	pkg, err := pkgdir.Resolve(opts.PackagePath)
	if err != nil {
		return nil, NewStructuralError("invalid package directory", err)
	}

	store := properties.NewStore(pkg.PropertiesPath())
	doc, err := store.Load()
	if err != nil {
		return nil, NewIOError("cannot load properties", err)
	}

	files, err := template.List(pkg)
	if err != nil {
		return nil, NewIOError("cannot enumerate templates", err)
	}

	result := &CheckResult{
		Package:            pkg.Root(),
		PropertiesPresent:  doc.Present,
		PropertiesDegraded: doc.Warn != nil,
		PropertyKeys:       flattenKeys(doc.Values),
		State:              classifyPackage(doc.Present, len(files)).String(),
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
		status := TemplateStatus{Name: file.Name, OutputPath: file.OutputPath}
		if _, statErr := os.Stat(file.OutputPath); statErr == nil {
			status.OutputExists = true
		}
		if _, expandErr := renderer.Expand(file, doc.Values); expandErr != nil {
			status.Error = expandErr.Error()
			result.TemplatesWithErrors++
		}
		result.Templates = append(result.Templates, status)
	}

	return result, nil
}

// flattenKeys lists the document's keys in dotted notation.
func flattenKeys(values map[string]any) []string {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil
	}
	return k.Keys()
}
