package domain

// ProofResult is the structured verdict for one submission. The orchestrator
// creates it once per run, fills it field by field, and it is immutable once
// returned. Every score field is clamped to [0,1].
type ProofResult struct {
	DLPID        int            `json:"dlp_id"`
	Valid        bool           `json:"valid"`
	Score        float64        `json:"score"`
	Ownership    float64        `json:"ownership"`
	Quality      float64        `json:"quality"`
	Authenticity float64        `json:"authenticity"`
	Uniqueness   float64        `json:"uniqueness"`
	Attributes   map[string]any `json:"attributes"`
	Metadata     map[string]any `json:"metadata"`
}

// NewProofResult returns the default (invalid, zero-scored) result carrying
// the configured dlp_id. This is also the short-circuit result when required
// records are missing.
func NewProofResult(dlpID int) ProofResult {
	return ProofResult{
		DLPID:      dlpID,
		Attributes: map[string]any{},
		Metadata:   map[string]any{},
	}
}
