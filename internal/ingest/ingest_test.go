package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestReadJD_PlainFile(t *testing.T) {
	path := writeFile(t, "jd.txt", "  React and SQL\n")

	got, err := ReadJD(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "React and SQL" {
		t.Errorf("got %q", got)
	}
}

func TestReadJD_Stdin(t *testing.T) {
	got, err := ReadJD(Stdin, strings.NewReader("Python developer"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Python developer" {
		t.Errorf("got %q", got)
	}
}

func TestReadJD_MissingFile(t *testing.T) {
	if _, err := ReadJD(filepath.Join(t.TempDir(), "nope.txt"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadJD_HTMLByExtension(t *testing.T) {
	html := `<html><head><style>.x{color:red}</style><script>var React = 1;</script></head>
<body><nav>Home | Jobs</nav><h1>Backend Intern</h1><ul><li>Go</li><li>PostgreSQL</li></ul></body></html>`
	path := writeFile(t, "posting.html", html)

	got, err := ReadJD(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Backend Intern", "Go", "PostgreSQL"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	for _, unwanted := range []string{"React", "color:red", "Home | Jobs"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("did not expect %q in %q", unwanted, got)
		}
	}
}

func TestReadJD_HTMLSniffedFromStdin(t *testing.T) {
	got, err := ReadJD(Stdin, strings.NewReader("<p>Java</p><p>Spring</p>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Java\nSpring" {
		t.Errorf("got %q, want %q", got, "Java\nSpring")
	}
}

func TestReadJD_TooLarge(t *testing.T) {
	if _, err := ReadJD(Stdin, strings.NewReader(strings.Repeat("a", maxJDBytes+1))); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	got, err := ReadJD(Stdin, strings.NewReader(strings.Repeat("a", maxJDBytes)))
	if err != nil {
		t.Fatalf("input at the limit should be accepted: %v", err)
	}
	if len(got) != maxJDBytes {
		t.Errorf("got %d bytes, want %d", len(got), maxJDBytes)
	}
}
