package record

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  *string
		expected uint64
	}{
		{"missing file", nil, 0},
		{"plain number", ptr("42"), 42},
		{"trailing newline", ptr(" 17\n"), 17},
		{"garbage", ptr("lots"), 0},
		{"negative", ptr("-3"), 0},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "rec", string(rune('a'+i)))
			if tc.content != nil {
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(path, []byte(*tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			if got := Load(path).Best(); got != tc.expected {
				t.Errorf("Best() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "best_score")

	r := Load(path)
	r.SetCurrent(5)
	if !r.IsRecord() {
		t.Error("5 over an empty record should be a record")
	}
	written, err := r.Write()
	if err != nil || !written {
		t.Fatalf("Write() = %v, %v; expected true, nil", written, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5" {
		t.Errorf("file content = %q, expected %q", data, "5")
	}

	// Lower score leaves the file alone.
	r2 := Load(path)
	r2.SetCurrent(3)
	if written, _ := r2.Write(); written {
		t.Error("Write() with a lower score should not write")
	}
	if r2.Best() != 5 {
		t.Errorf("Best() = %d, expected 5", r2.Best())
	}

	// Equal score is written.
	r2.SetCurrent(5)
	if written, err := r2.Write(); !written || err != nil {
		t.Errorf("Write() with an equal score = %v, %v; expected true, nil", written, err)
	}
}

func TestEmptyPathKeepsMemoryOnly(t *testing.T) {
	r := Load("")
	r.SetCurrent(9)
	written, err := r.Write()
	if written || err != nil {
		t.Errorf("Write() = %v, %v; expected false, nil", written, err)
	}
	if r.Best() != 9 {
		t.Errorf("Best() = %d, expected 9", r.Best())
	}
}

func ptr(s string) *string { return &s }
