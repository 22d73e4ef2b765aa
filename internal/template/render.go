package template

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"

	"github.com/confit-dev/confit/internal/template/engine"
)

// Banner is prepended to every rendered artifact. The ;; prefix keeps
// it a comment in the emitted configuration files.
const Banner = ";; Generated by confit. DO NOT EDIT.\n" +
	";; Changes will be lost the next time this package is rendered.\n"

// RenderStage identifies the rendering step that failed.
type RenderStage int

const (
	// StageRead indicates the template file could not be read.
	StageRead RenderStage = iota
	// StageExpand indicates placeholder expansion failed.
	StageExpand
	// StageWrite indicates the output artifact could not be written.
	StageWrite
)

// RenderError reports a failed template rendering.
type RenderError struct {
	// Template is the template filename.
	Template string
	// Stage is the rendering step that failed.
	Stage RenderStage
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Template, e.Cause)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Renderer expands templates against a resolved property mapping and
// writes the output artifacts.
type Renderer struct {
	engine engine.Engine
}

// NewRenderer creates a Renderer backed by the given engine.
func NewRenderer(eng engine.Engine) *Renderer {
	return &Renderer{engine: eng}
}

// Expand reads the template and expands its placeholders against
// context, returning the banner-prefixed artifact content without
// writing it.
func (r *Renderer) Expand(file File, context map[string]any) ([]byte, error) {
	raw, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, &RenderError{Template: file.Name, Stage: StageRead, Cause: err}
	}

	body, err := r.engine.Expand(file.Name, raw, context)
	if err != nil {
		return nil, &RenderError{Template: file.Name, Stage: StageExpand, Cause: err}
	}

	return append([]byte(Banner), body...), nil
}

// Render expands the template and writes the artifact to the template's
// output path, overwriting any previous content.
func (r *Renderer) Render(file File, context map[string]any) error {
	content, err := r.Expand(file, context)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(file.OutputPath, content, 0o644); err != nil {
		return &RenderError{Template: file.Name, Stage: StageWrite, Cause: err}
	}

	return nil
}
