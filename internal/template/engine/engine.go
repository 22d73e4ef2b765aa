// Package engine defines the placeholder-substitution capability used
// for template rendering.
package engine

// Engine expands placeholders in template source against a key/value
// context.
//
// Missing keys follow the engine's own semantics and are not
// special-cased by callers.
type Engine interface {
	// Expand parses src and substitutes placeholders from vars. The
	// name identifies the template in error messages.
	Expand(name string, src []byte, vars map[string]any) ([]byte, error)
}
