package model

// Confidence grades how strong a classification match was
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// MatchType records which rule family produced a classification
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchAlias   MatchType = "alias"
	MatchKeyword MatchType = "keyword"
	MatchNone    MatchType = "none"
)

// ClassificationResult is the outcome of classifying a committee or employer
// name into the financial-sector taxonomy. A non-financial result never
// carries a sector.
type ClassificationResult struct {
	IsFinancial bool       `json:"is_financial"`
	Sector      string     `json:"sector,omitempty"`
	Subsector   string     `json:"subsector,omitempty"`
	Confidence  Confidence `json:"confidence"`
	MatchType   MatchType  `json:"match_type"`
	MatchedFirm string     `json:"matched_firm,omitempty"`
}

// NotFinancial is the well-defined negative result. Classification misses
// resolve to this rather than an error so every name is classifiable.
func NotFinancial() ClassificationResult {
	return ClassificationResult{
		IsFinancial: false,
		Confidence:  ConfidenceNone,
		MatchType:   MatchNone,
	}
}

// Financial-sector taxonomy. Sectors key the HHI computation; subsectors key
// the per-official breakdown.
const (
	SectorBanking         = "banking"
	SectorInvestment      = "investment"
	SectorInsurance       = "insurance"
	SectorRealEstate      = "real_estate"
	SectorCrypto          = "crypto"
	SectorFintech         = "fintech"
	SectorConsumerLending = "consumer_lending"
	SectorAccounting      = "accounting"
)
