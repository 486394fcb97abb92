package filtergen

import (
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		intermediate string
		strictness   string
		want         string
	}{
		{"foo.intermediate.json", "loose", filepath.Join("generated", "foo-loose.xml")},
		{"bar.json", "strict", filepath.Join("generated", "bar-strict.xml")},
		{"nested/dir/baz.intermediate.json", "normal", filepath.Join("generated", "baz-normal.xml")},
		{"noext", "strict", filepath.Join("generated", "noext-strict.xml")},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.intermediate, tt.strictness); got != tt.want {
			t.Errorf("DefaultOutputPath(%q, %q) = %q, want %q",
				tt.intermediate, tt.strictness, got, tt.want)
		}
	}
}

func TestDefaultOutputPathIn(t *testing.T) {
	got := DefaultOutputPathIn("out", "foo.intermediate.json", "strict")
	want := filepath.Join("out", "foo-strict.xml")
	if got != want {
		t.Errorf("DefaultOutputPathIn = %q, want %q", got, want)
	}
}

func TestValidStrictness(t *testing.T) {
	for _, level := range []string{"strict", "normal", "loose"} {
		if !ValidStrictness(level) {
			t.Errorf("ValidStrictness(%q) = false", level)
		}
	}
	for _, level := range []string{"", "Strict", "pedantic"} {
		if ValidStrictness(level) {
			t.Errorf("ValidStrictness(%q) = true", level)
		}
	}
}
