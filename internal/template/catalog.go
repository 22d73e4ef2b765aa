// Package template enumerates and renders a package's template files.
//
// Templates live in the package's config/ directory, carry the .tmpl
// suffix, and render to an artifact of the same name with the suffix
// replaced by .clj, written next to the template.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/confit-dev/confit/internal/pkgdir"
)

const (
	// Suffix marks a file in the config directory as a template.
	Suffix = ".tmpl"

	// OutputExt is the extension of rendered artifacts.
	OutputExt = ".clj"
)

// File is one template inside a package's config directory.
type File struct {
	// Name is the template filename.
	Name string

	// Path is the template's location on disk.
	Path string

	// OutputPath is where the rendered artifact is written.
	OutputPath string
}

// List enumerates the package's template files in lexical filename
// order. A missing config directory is valid and yields an empty
// catalog; any other scan failure is returned as an error.
func List(pkg *pkgdir.Package) ([]File, error) {
	dir := pkg.ConfigDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot scan %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Suffix) {
			continue
		}
		files = append(files, File{
			Name:       name,
			Path:       filepath.Join(dir, name),
			OutputPath: filepath.Join(dir, strings.TrimSuffix(name, Suffix)+OutputExt),
		})
	}

	return files, nil
}
