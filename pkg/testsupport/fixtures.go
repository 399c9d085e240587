package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// ConstraintCase is one entry of a YAML conformance table: a value checked
// against declared facets and the violation code it must produce (zero for a
// value that must pass).
type ConstraintCase struct {
	Name      string `yaml:"name"`
	Value     string `yaml:"value"`
	MinLength int    `yaml:"minLength"`
	MaxLength int    `yaml:"maxLength"`
	Pattern   string `yaml:"pattern"`
	Code      int    `yaml:"code"`
}

// LoadConstraintCases reads a YAML conformance table. Testing helpers fail
// the test on error to keep conformance tests concise.
func LoadConstraintCases(t *testing.T, path string) []ConstraintCase {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load constraint cases: %v", err)
	}
	var cases []ConstraintCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("unmarshal constraint cases: %v", err)
	}
	return cases
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteGolden writes arbitrary data as indented JSON to a golden file when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustUnmarshalJSON decodes a fixture payload into out, failing the test on
// error.
func MustUnmarshalJSON(t *testing.T, data []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
}
