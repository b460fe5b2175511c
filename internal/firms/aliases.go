package firms

import "github.com/pacwatch/pacwatch/internal/model"

// parentAliases maps subsidiary and brand names to one canonical parent.
// Keys are normalized at init so spellings with corporate suffixes stay
// reachable through the normalized lookups. Exact lookups only, no fuzzy
// matching.
var parentAliases = normalizeAliasKeys(map[string]string{
	"CHASE":             "JPMORGAN CHASE",
	"CHASE BANK":        "JPMORGAN CHASE",
	"JP MORGAN":         "JPMORGAN CHASE",
	"JPMORGAN":          "JPMORGAN CHASE",
	"JP MORGAN CHASE":   "JPMORGAN CHASE",
	"BEAR STEARNS":      "JPMORGAN CHASE",
	"WASHINGTON MUTUAL": "JPMORGAN CHASE",
	"FIRST REPUBLIC":    "JPMORGAN CHASE",

	"MERRILL LYNCH": "BANK OF AMERICA",
	"MERRILL":       "BANK OF AMERICA",
	"BOFA":          "BANK OF AMERICA",
	"COUNTRYWIDE":   "BANK OF AMERICA",

	"WACHOVIA": "WELLS FARGO",

	"CITI":             "CITIGROUP",
	"CITIBANK":         "CITIGROUP",
	"SALOMON BROTHERS": "CITIGROUP",

	"GOLDMAN": "GOLDMAN SACHS",
	"GS":      "GOLDMAN SACHS",

	"SMITH BARNEY": "MORGAN STANLEY",
	"ETRADE":       "MORGAN STANLEY",
	"E*TRADE":      "MORGAN STANLEY",

	"TD AMERITRADE": "CHARLES SCHWAB",
	"SCHWAB":        "CHARLES SCHWAB",

	"AMEX": "AMERICAN EXPRESS",

	"PWC": "PRICEWATERHOUSECOOPERS",
	"EY":  "ERNST & YOUNG",
})

func normalizeAliasKeys(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for name, parent := range raw {
		out[Normalize(name)] = parent
	}
	return out
}

// majorFirms is the supplemental hand-curated seed of known firms; the
// aggregator adds classified PAC connected organizations on top of it.
var majorFirms = map[string]model.ClassificationResult{
	"JPMORGAN CHASE":  financial(model.SectorBanking, "commercial_bank"),
	"WELLS FARGO":     financial(model.SectorBanking, "commercial_bank"),
	"BANK OF AMERICA": financial(model.SectorBanking, "commercial_bank"),
	"CITIGROUP":       financial(model.SectorBanking, "commercial_bank"),
	"US BANCORP":      financial(model.SectorBanking, "commercial_bank"),
	"PNC":             financial(model.SectorBanking, "commercial_bank"),
	"TRUIST":          financial(model.SectorBanking, "commercial_bank"),

	"GOLDMAN SACHS":          financial(model.SectorInvestment, "investment_bank"),
	"MORGAN STANLEY":         financial(model.SectorInvestment, "investment_bank"),
	"CHARLES SCHWAB":         financial(model.SectorInvestment, "brokerage"),
	"FIDELITY INVESTMENTS":   financial(model.SectorInvestment, "asset_management"),
	"BLACKROCK":              financial(model.SectorInvestment, "asset_management"),
	"VANGUARD":               financial(model.SectorInvestment, "asset_management"),
	"STATE STREET":           financial(model.SectorInvestment, "asset_management"),
	"BLACKSTONE":             financial(model.SectorInvestment, "private_equity"),
	"KKR":                    financial(model.SectorInvestment, "private_equity"),
	"CARLYLE":                financial(model.SectorInvestment, "private_equity"),
	"CITADEL":                financial(model.SectorInvestment, "hedge_fund"),

	"PRUDENTIAL": financial(model.SectorInsurance, "insurance_carrier"),
	"METLIFE":    financial(model.SectorInsurance, "insurance_carrier"),
	"AIG":        financial(model.SectorInsurance, "insurance_carrier"),
	"ALLSTATE":   financial(model.SectorInsurance, "insurance_carrier"),

	"AMERICAN EXPRESS": financial(model.SectorConsumerLending, "credit_cards"),
	"CAPITAL ONE":      financial(model.SectorConsumerLending, "credit_cards"),
	"DISCOVER":         financial(model.SectorConsumerLending, "credit_cards"),

	"VISA":       financial(model.SectorFintech, "payments"),
	"MASTERCARD": financial(model.SectorFintech, "payments"),
	"PAYPAL":     financial(model.SectorFintech, "payments"),

	"COINBASE": financial(model.SectorCrypto, "digital_assets"),

	"DELOITTE":               financial(model.SectorAccounting, "accounting"),
	"KPMG":                   financial(model.SectorAccounting, "accounting"),
	"ERNST & YOUNG":          financial(model.SectorAccounting, "accounting"),
	"PRICEWATERHOUSECOOPERS": financial(model.SectorAccounting, "accounting"),
}

func financial(sector, subsector string) model.ClassificationResult {
	return model.ClassificationResult{
		IsFinancial: true,
		Sector:      sector,
		Subsector:   subsector,
		Confidence:  model.ConfidenceHigh,
		MatchType:   model.MatchExact,
	}
}
