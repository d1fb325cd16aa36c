package justfile

import (
	"os"
	"strings"
	"testing"
)

func TestRenderCarriesMarker(t *testing.T) {
	content := Render("work")
	if !strings.HasPrefix(content, "# viewyard:work\n") {
		t.Errorf("missing marker, got %q", content[:30])
	}
	if !strings.Contains(content, "viewyard create {{view-name}} --viewset work") {
		t.Error("create recipe should pin the viewset")
	}
}

func TestCheckMissing(t *testing.T) {
	status, err := Check(t.TempDir(), "work")
	if err != nil {
		t.Fatal(err)
	}
	if status != Missing {
		t.Errorf("status = %v, want missing", status)
	}
}

func TestWriteThenCurrent(t *testing.T) {
	root := t.TempDir()
	if err := Write(root, "work"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	status, err := Check(root, "work")
	if err != nil {
		t.Fatal(err)
	}
	if status != Current {
		t.Errorf("status = %v, want current", status)
	}

	// Idempotent.
	if err := Write(root, "work"); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}
}

func TestStaleMarkerIsRewritten(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(Path(root), []byte("# viewyard:old\nstale body\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	status, err := Check(root, "work")
	if err != nil {
		t.Fatal(err)
	}
	if status != Stale {
		t.Fatalf("status = %v, want stale", status)
	}

	if err := Write(root, "work"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	status, _ = Check(root, "work")
	if status != Current {
		t.Errorf("status after rewrite = %v, want current", status)
	}
}

func TestForeignJustfileIsProtected(t *testing.T) {
	root := t.TempDir()
	original := "# my own recipes\nbuild:\n    make\n"
	if err := os.WriteFile(Path(root), []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	status, err := Check(root, "work")
	if err != nil {
		t.Fatal(err)
	}
	if status != Foreign {
		t.Fatalf("status = %v, want foreign", status)
	}

	if err := Write(root, "work"); err == nil {
		t.Fatal("Write() should refuse to overwrite a foreign justfile")
	}
	data, _ := os.ReadFile(Path(root))
	if string(data) != original {
		t.Error("foreign justfile was modified")
	}
}
