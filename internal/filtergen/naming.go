// =============================================================================
// xml-suite - Output Naming
// =============================================================================
//
// Default output naming for compiled filters. The generated file name is
// derived from the intermediate file name with the strictness level folded
// in, so filters compiled at different levels never overwrite each other.
//
// =============================================================================

package filtergen

import (
	"path/filepath"
	"strings"
)

// DefaultGeneratedDir is where compiled filters are placed when no explicit
// output path is given.
const DefaultGeneratedDir = "generated"

// DefaultOutputPath derives the output path for a compiled filter.
//
// The intermediate file's basename is stripped of its ".intermediate.json"
// (or plain ".json") suffix, the strictness level is appended, and the
// result is placed under the generated directory:
//
//   foo.intermediate.json + loose  -> generated/foo-loose.xml
//   bar.json              + strict -> generated/bar-strict.xml
func DefaultOutputPath(intermediatePath, strictness string) string {
	return DefaultOutputPathIn(DefaultGeneratedDir, intermediatePath, strictness)
}

// DefaultOutputPathIn is DefaultOutputPath with an explicit target directory.
func DefaultOutputPathIn(dir, intermediatePath, strictness string) string {
	base := filepath.Base(intermediatePath)

	if strings.HasSuffix(base, ".intermediate.json") {
		base = strings.TrimSuffix(base, ".intermediate.json")
	} else {
		base = strings.TrimSuffix(base, ".json")
	}

	return filepath.Join(dir, base+"-"+strictness+".xml")
}
