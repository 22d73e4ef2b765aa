// Package pkgdir resolves and validates package directories.
//
// A package directory is the root folder for one deployable unit's
// configuration artifacts. It carries an optional property document at
// its top level and an optional config/ directory holding templates.
package pkgdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// PropertiesFile is the property document filename inside a package.
	PropertiesFile = "properties.yml"

	// ConfigDirName is the directory holding template files inside a package.
	ConfigDirName = "config"
)

// Package is a validated package directory.
type Package struct {
	root string
}

// Resolve normalizes path and validates that it names an existing
// directory. Trailing path separators are stripped by the normalization.
func Resolve(path string) (*Package, error) {
	if path == "" {
		return nil, fmt.Errorf("package path cannot be empty")
	}

	root := filepath.Clean(path)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("package directory %s does not exist", root)
		}
		return nil, fmt.Errorf("cannot access package directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("package path %s is not a directory", root)
	}

	return &Package{root: root}, nil
}

// Root returns the normalized package directory path.
func (p *Package) Root() string {
	return p.root
}

// PropertiesPath returns the path of the package's property document.
func (p *Package) PropertiesPath() string {
	return filepath.Join(p.root, PropertiesFile)
}

// ConfigDir returns the path of the package's template directory.
func (p *Package) ConfigDir() string {
	return filepath.Join(p.root, ConfigDirName)
}
