package services

import (
	"os"
	"path/filepath"
	"testing"

	"datavista/internal/errors"
)

func writeBaseline(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "product_sales.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBaseline_Valid(t *testing.T) {
	path := writeBaseline(t, "Food and beverages: 56144.84\nHealth and beauty: 49193.74\n\nSports and travel: 55122.83\n")

	baseline, err := LoadBaseline(path)
	if err != nil {
		t.Fatalf("LoadBaseline() error = %v", err)
	}
	if len(baseline) != 3 {
		t.Fatalf("got %d entries, want 3", len(baseline))
	}
	if baseline["Food and beverages"] != 56144.84 {
		t.Errorf("Food and beverages = %v, want 56144.84", baseline["Food and beverages"])
	}
}

func TestLoadBaseline_MissingFile(t *testing.T) {
	_, err := LoadBaseline(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("LoadBaseline() should report a missing file; tolerating it is the caller's decision")
	}
	if code := appErrCode(t, err); code != errors.CodeSourceUnavail {
		t.Errorf("error code = %s, want %s", code, errors.CodeSourceUnavail)
	}
}

func TestLoadBaseline_MalformedLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no separator", "Food and beverages 56144.84"},
		{"bad float", "Food and beverages: lots"},
		{"empty name", ": 12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline, err := LoadBaseline(writeBaseline(t, "Health and beauty: 1.0\n"+tt.content))
			if err == nil {
				t.Fatal("LoadBaseline() should fail the whole file on a malformed line")
			}
			if code := appErrCode(t, err); code != errors.CodeParse {
				t.Errorf("error code = %s, want %s", code, errors.CodeParse)
			}
			if baseline != nil {
				t.Error("no partial mapping on failed parse")
			}
		})
	}
}
