// Package policy defines the declarative scoring policy: the weights used to
// combine the verifier dimensions and the hard validity thresholds. The
// built-in defaults are the canonical scoring constants; a policy document
// only exists to override them for a specific deployment.
package policy

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const SpecSchemaV1 = "socialproof.policy.v1"

const weightSumTolerance = 1e-9

type Spec struct {
	Schema     string     `json:"schema" yaml:"schema"`
	Weights    Weights    `json:"weights" yaml:"weights"`
	Thresholds Thresholds `json:"thresholds" yaml:"thresholds"`
}

// Weights combine the four proof dimensions into the overall score. The
// authenticity weight applies to the combined authenticity/time dimension.
type Weights struct {
	Ownership    float64 `json:"ownership" yaml:"ownership"`
	Quality      float64 `json:"quality" yaml:"quality"`
	Authenticity float64 `json:"authenticity" yaml:"authenticity"`
	Uniqueness   float64 `json:"uniqueness" yaml:"uniqueness"`
}

// Thresholds are hard validity gates: failing any one invalidates the proof
// regardless of the weighted score. Authenticity and time consistency gate on
// their raw, pre-combination scores.
type Thresholds struct {
	MinOwnership       float64 `json:"min_ownership" yaml:"min_ownership"`
	MinQuality         float64 `json:"min_quality" yaml:"min_quality"`
	MinAuthenticity    float64 `json:"min_authenticity" yaml:"min_authenticity"`
	MinTimeConsistency float64 `json:"min_time_consistency" yaml:"min_time_consistency"`
	MinUniqueness      float64 `json:"min_uniqueness" yaml:"min_uniqueness"`
}

// Default returns the canonical scoring policy.
func Default() Spec {
	return Spec{
		Schema: SpecSchemaV1,
		Weights: Weights{
			Ownership:    0.35,
			Quality:      0.25,
			Authenticity: 0.25,
			Uniqueness:   0.15,
		},
		Thresholds: Thresholds{
			MinOwnership:       0.7,
			MinQuality:         0.5,
			MinAuthenticity:    0.9,
			MinTimeConsistency: 0.8,
			MinUniqueness:      0.6,
		},
	}
}

// Parse decodes a YAML or JSON policy document and validates it.
func Parse(input []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(input, &spec); err != nil {
		return Spec{}, fmt.Errorf("decode policy: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Load reads a policy document from disk. An empty path means the default
// policy.
func Load(path string) (Spec, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read policy: %w", err)
	}
	return Parse(raw)
}

func (s Spec) Validate() error {
	if s.Schema != SpecSchemaV1 {
		return fmt.Errorf("policy.schema must be %q", SpecSchemaV1)
	}

	weights := map[string]float64{
		"ownership":    s.Weights.Ownership,
		"quality":      s.Weights.Quality,
		"authenticity": s.Weights.Authenticity,
		"uniqueness":   s.Weights.Uniqueness,
	}
	sum := 0.0
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("policy.weights.%s must be in [0,1]", name)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return errors.New("policy.weights must sum to 1")
	}

	thresholds := map[string]float64{
		"min_ownership":        s.Thresholds.MinOwnership,
		"min_quality":          s.Thresholds.MinQuality,
		"min_authenticity":     s.Thresholds.MinAuthenticity,
		"min_time_consistency": s.Thresholds.MinTimeConsistency,
		"min_uniqueness":       s.Thresholds.MinUniqueness,
	}
	for name, v := range thresholds {
		if v < 0 || v > 1 {
			return fmt.Errorf("policy.thresholds.%s must be in [0,1]", name)
		}
	}
	return nil
}
