package model

// HHIResult is the outcome of the concentration computation over one
// official's combined financial-sector contributions.
type HHIResult struct {
	Total         float64            `json:"total"`
	Shares        map[string]float64 `json:"shares,omitempty"` // percent, sums to 100
	DominantSector string            `json:"dominant_sector,omitempty"`
	DominantShare float64            `json:"dominant_share,omitempty"`
	HHI           float64            `json:"hhi"`   // 0..10000
	Label         string             `json:"label"` // informational only
}

// Qualitative HHI labels. Informational thresholds, not invariants.
const (
	HHIUnconcentrated = "unconcentrated" // < 1500
	HHIModerate       = "moderate"       // 1500..2500
	HHIConcentrated   = "concentrated"   // > 2500
)

// ScoreDetail exposes the raw inputs behind one sub-score so downstream
// reporting can show its work.
type ScoreDetail map[string]float64

// InfluenceScore is the scored view of one official. All four scores lie in
// [0,100]; Composite is the fixed weighted sum of the other three.
type InfluenceScore struct {
	Scale         float64                `json:"scale_score"`
	Concentration float64                `json:"concentration_score"`
	Personal      float64                `json:"personal_involvement_score"`
	Composite     float64                `json:"composite_score"`
	Estimated     bool                   `json:"estimated,omitempty"` // personal score computed without net worth
	Detail        map[string]ScoreDetail `json:"detail,omitempty"`
}

// Composite weights; fixed, sum to 1.0.
const (
	WeightScale         = 0.40
	WeightConcentration = 0.30
	WeightPersonal      = 0.30
)

// Score dimensions accepted by the leaderboard
const (
	DimensionScale         = "scale"
	DimensionConcentration = "concentration"
	DimensionPersonal      = "personal"
	DimensionComposite     = "composite"
)
