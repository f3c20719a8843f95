package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() err=%v", err)
	}
}

func TestParse_YAMLDocument(t *testing.T) {
	doc := `
schema: socialproof.policy.v1
weights:
  ownership: 0.4
  quality: 0.3
  authenticity: 0.2
  uniqueness: 0.1
thresholds:
  min_ownership: 0.5
  min_quality: 0.5
  min_authenticity: 0.5
  min_time_consistency: 0.5
  min_uniqueness: 0.5
`
	spec, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() err=%v", err)
	}
	if spec.Weights.Ownership != 0.4 {
		t.Fatalf("weights.ownership=%v, want 0.4", spec.Weights.Ownership)
	}
	if spec.Thresholds.MinUniqueness != 0.5 {
		t.Fatalf("thresholds.min_uniqueness=%v, want 0.5", spec.Thresholds.MinUniqueness)
	}
}

func TestParse_RejectsBadSchema(t *testing.T) {
	if _, err := Parse([]byte("schema: something.else.v9\n")); err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	spec := Default()
	spec.Weights.Ownership = 0.5
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected weight sum error")
	}
}

func TestValidate_ThresholdRange(t *testing.T) {
	spec := Default()
	spec.Thresholds.MinQuality = 1.5
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected threshold range error")
	}
}

func TestLoad_EmptyPathMeansDefault(t *testing.T) {
	spec, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") err=%v", err)
	}
	if spec != Default() {
		t.Fatalf("Load(\"\")=%+v, want default policy", spec)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	doc := `
schema: socialproof.policy.v1
weights:
  ownership: 0.35
  quality: 0.25
  authenticity: 0.25
  uniqueness: 0.15
thresholds:
  min_ownership: 0.7
  min_quality: 0.5
  min_authenticity: 0.9
  min_time_consistency: 0.8
  min_uniqueness: 0.6
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}
	if spec != Default() {
		t.Fatalf("Load()=%+v, want the default values", spec)
	}
}
