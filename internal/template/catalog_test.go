package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/confit-dev/confit/internal/pkgdir"
)

func setupPackage(t *testing.T, withConfig bool) *pkgdir.Package {
	t.Helper()
	tmpDir := t.TempDir()
	if withConfig {
		if err := os.Mkdir(filepath.Join(tmpDir, "config"), 0755); err != nil {
			t.Fatalf("Failed to create config dir: %v", err)
		}
	}
	pkg, err := pkgdir.Resolve(tmpDir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return pkg
}

func addTemplate(t *testing.T, pkg *pkgdir.Package, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(pkg.ConfigDir(), name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write template %s: %v", name, err)
	}
}

func TestList(t *testing.T) {
	t.Run("selects templates in lexical order", func(t *testing.T) {
		pkg := setupPackage(t, true)
		addTemplate(t, pkg, "b.tmpl", "")
		addTemplate(t, pkg, "a.tmpl", "")
		addTemplate(t, pkg, "notes.txt", "")
		addTemplate(t, pkg, "old.clj", "")
		if err := os.Mkdir(filepath.Join(pkg.ConfigDir(), "sub.tmpl"), 0755); err != nil {
			t.Fatalf("Failed to create subdir: %v", err)
		}

		files, err := List(pkg)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("Expected 2 templates, got %d: %v", len(files), files)
		}
		if files[0].Name != "a.tmpl" || files[1].Name != "b.tmpl" {
			t.Errorf("Expected lexical order [a.tmpl b.tmpl], got [%s %s]", files[0].Name, files[1].Name)
		}
	})

	t.Run("maps output paths", func(t *testing.T) {
		pkg := setupPackage(t, true)
		addTemplate(t, pkg, "rules.tmpl", "")

		files, err := List(pkg)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := filepath.Join(pkg.ConfigDir(), "rules.clj")
		if files[0].OutputPath != want {
			t.Errorf("Expected output path %s, got %s", want, files[0].OutputPath)
		}
	})

	t.Run("missing config dir yields empty catalog", func(t *testing.T) {
		pkg := setupPackage(t, false)

		files, err := List(pkg)
		if err != nil {
			t.Fatalf("Expected missing config dir to be tolerated, got %v", err)
		}
		if len(files) != 0 {
			t.Errorf("Expected empty catalog, got %v", files)
		}
	})

	t.Run("scan failure is surfaced", func(t *testing.T) {
		pkg := setupPackage(t, false)
		// A plain file where the config directory should be.
		if err := os.WriteFile(pkg.ConfigDir(), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		if _, err := List(pkg); err == nil {
			t.Fatal("Expected error when config is not a directory")
		}
	})
}
