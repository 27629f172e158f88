package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNamesAndCount(t *testing.T) {
	c := New(
		Group{Name: "Illinois", Names: []string{"Springfield", "Chicago"}},
		Group{Name: "Empty"},
		Group{Name: "Oregon", Names: []string{"Salem"}},
	)

	if c.Count() != 3 {
		t.Errorf("expected 3 names, got %d", c.Count())
	}
	want := []string{"Springfield", "Chicago", "Salem"}
	got := c.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantCount int
		wantGroup string
	}{
		{"name key", `{"states":[{"name":"Illinois","cities":["Springfield","Chicago"]}]}`, false, 2, "Illinois"},
		{"state key", `{"states":[{"state":"Oregon","cities":["Salem"]}]}`, false, 1, "Oregon"},
		{"empty states", `{"states":[]}`, false, 0, ""},
		{"missing states", `{"regions":[]}`, true, 0, ""},
		{"malformed", `{"states":[`, true, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrLoad) {
					t.Errorf("expected ErrLoad, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			if c.Count() != tt.wantCount {
				t.Errorf("expected %d names, got %d", tt.wantCount, c.Count())
			}
			if tt.wantGroup != "" && c.Groups[0].Name != tt.wantGroup {
				t.Errorf("expected group %s, got %s", tt.wantGroup, c.Groups[0].Name)
			}
		})
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data := `{"states":[{"name":"Illinois","cities":["Springfield"]},{"name":"Vermont","cities":["Spring Valley","Shelbyville"]}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src := NewFileSource(path)
	if src.Name() != "file:"+path {
		t.Errorf("unexpected source name %s", src.Name())
	}

	c, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.Count() != 3 || len(c.Groups) != 2 {
		t.Errorf("expected 3 names in 2 groups, got %d in %d", c.Count(), len(c.Groups))
	}
}

func TestFileSourceMissing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := src.Load(context.Background()); !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	src, closeFn, err := Open(context.Background(), "", "cities.json")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer closeFn()

	if _, ok := src.(*FileSource); !ok {
		t.Errorf("expected *FileSource, got %T", src)
	}
}

func TestOpenBadDatabase(t *testing.T) {
	if _, _, err := Open(context.Background(), "invalid://connection", "cities.json"); !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
}
