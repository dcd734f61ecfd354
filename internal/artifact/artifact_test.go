package artifact_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"data-analysis-agents/internal/artifact"
)

func newStore(t *testing.T) *artifact.Store {
	t.Helper()
	s, err := artifact.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("artifact.New: %v", err)
	}
	return s
}

func TestSave(t *testing.T) {
	s := newStore(t)

	t.Run("Writes File", func(t *testing.T) {
		art, err := s.Save(artifact.KindReport, ".html", []byte("<html>report</html>"))
		if err != nil {
			t.Fatalf("Save: %v", err)
		}

		data, err := os.ReadFile(art.Path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(data) != "<html>report</html>" {
			t.Errorf("unexpected content: %s", data)
		}
		if filepath.Base(filepath.Dir(art.Path)) != "reports" {
			t.Errorf("expected reports subdir, got %s", art.Path)
		}
		if !strings.HasSuffix(art.Filename, ".html") {
			t.Errorf("expected .html extension, got %s", art.Filename)
		}
		if art.URL != "/download/"+art.Filename {
			t.Errorf("unexpected URL: %s", art.URL)
		}
	})

	t.Run("Unique Filenames", func(t *testing.T) {
		a, _ := s.Save(artifact.KindChart, ".html", []byte("a"))
		b, _ := s.Save(artifact.KindChart, ".html", []byte("b"))
		if a.Filename == b.Filename {
			t.Errorf("expected distinct filenames, got %s twice", a.Filename)
		}
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		if _, err := s.Save(artifact.Kind("bogus"), ".html", nil); err == nil {
			t.Error("expected error for unknown kind")
		}
	})
}

func TestAllocate(t *testing.T) {
	s := newStore(t)

	art, err := s.Allocate(artifact.KindTable, "xlsx")
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if !strings.HasSuffix(art.Filename, ".xlsx") {
		t.Errorf("extension must be normalized with a dot, got %s", art.Filename)
	}
	if _, err := os.Stat(art.Path); !os.IsNotExist(err) {
		t.Error("Allocate must not create the file")
	}
	// The target directory must exist so the caller can write directly.
	if _, err := os.Stat(filepath.Dir(art.Path)); err != nil {
		t.Errorf("target dir missing: %v", err)
	}
}

func TestResolve(t *testing.T) {
	s := newStore(t)
	art, err := s.Save(artifact.KindDashboard, ".html", []byte("dash"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Run("Found", func(t *testing.T) {
		path, err := s.Resolve(art.Filename)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if path != art.Path {
			t.Errorf("expected %s, got %s", art.Path, path)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := s.Resolve("chart_nope.html"); err == nil {
			t.Error("expected not-found error")
		}
	})

	t.Run("Rejects Traversal", func(t *testing.T) {
		for _, name := range []string{"../secret", "a/b.html", "..", ""} {
			if _, err := s.Resolve(name); err == nil {
				t.Errorf("expected rejection for %q", name)
			}
		}
	})
}

func TestRenderMarkdown(t *testing.T) {
	got, err := artifact.RenderMarkdown("# Title\n\nSome **bold** text.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	for _, want := range []string{"<h1", "<strong>bold</strong>", "<table>"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}
