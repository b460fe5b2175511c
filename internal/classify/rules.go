package classify

import "github.com/pacwatch/pacwatch/internal/model"

// exclusionKeywords force a negative result regardless of every other rule.
// Hand-curated collisions: organizations whose names contain financial
// keywords without being financial firms.
var exclusionKeywords = []string{
	"FOOD BANK",
	"BLOOD BANK",
	"RIVER BANK",
	"WEST BANK",
	"LABOR UNION",
	"WORKERS UNION",
	"UNION OF",
	"AFL-CIO",
	"SEIU",
	"TEAMSTERS",
	"BROTHERHOOD OF",
	"FEDERATION OF TEACHERS",
	"FEDERATION OF LABOR",
	"EDUCATION ASSOCIATION",
	"NURSES ASSOCIATION",
	"ADVOCACY",
	"CITIZENS FOR",
	"HUMAN RIGHTS",
	"CAPITAL AREA",
	"CAPITAL CITY",
	"CAPITAL REGION",
}

// keywordRule maps a keyword set to one taxonomy cell. Rules are evaluated
// in order against both the name and the connected organization; the first
// match wins.
type keywordRule struct {
	keywords  []string
	sector    string
	subsector string
}

var specificRules = []keywordRule{
	// Named investment banks and brokerages before anything generic.
	{[]string{"GOLDMAN SACHS", "MORGAN STANLEY", "LAZARD", "EVERCORE", "JEFFERIES"}, model.SectorInvestment, "investment_bank"},
	{[]string{"CHARLES SCHWAB", "FIDELITY INVESTMENTS", "EDWARD JONES", "RAYMOND JAMES"}, model.SectorInvestment, "brokerage"},
	{[]string{"BLACKROCK", "VANGUARD", "STATE STREET", "ASSET MANAGEMENT", "WEALTH MANAGEMENT"}, model.SectorInvestment, "asset_management"},
	{[]string{"BLACKSTONE", "CARLYLE", "PRIVATE EQUITY", "KKR"}, model.SectorInvestment, "private_equity"},
	{[]string{"HEDGE FUND", "CITADEL", "RENAISSANCE TECHNOLOGIES", "BRIDGEWATER"}, model.SectorInvestment, "hedge_fund"},
	{[]string{"VENTURE CAPITAL", "ANDREESSEN"}, model.SectorInvestment, "venture_capital"},
	{[]string{"INVESTMENT BANK", "SECURITIES", "CAPITAL MARKETS", "INVESTMENT"}, model.SectorInvestment, "investment_bank"},

	// Named commercial banks.
	{[]string{"JPMORGAN", "J.P. MORGAN", "CHASE BANK"}, model.SectorBanking, "commercial_bank"},
	{[]string{"WELLS FARGO", "BANK OF AMERICA", "CITIGROUP", "CITIBANK", "U.S. BANCORP", "US BANK", "PNC FINANCIAL", "TRUIST", "REGIONS FINANCIAL"}, model.SectorBanking, "commercial_bank"},
	{[]string{"SAVINGS BANK", "SAVINGS & LOAN", "SAVINGS AND LOAN"}, model.SectorBanking, "savings_institution"},
	{[]string{"CREDIT UNION"}, model.SectorBanking, "credit_union"},
	{[]string{"BANKERS ASSOCIATION", "COMMUNITY BANK", "NATIONAL BANK", "BANCORP", "BANCSHARES"}, model.SectorBanking, "commercial_bank"},

	// Insurance.
	{[]string{"INSURANCE", "UNDERWRITERS", "ACTUARIAL", "MUTUAL LIFE", "ALLSTATE", "PRUDENTIAL", "METLIFE", "AFLAC"}, model.SectorInsurance, "insurance_carrier"},

	// Real estate finance.
	{[]string{"REAL ESTATE", "REALTORS", "REIT", "PROPERTY MANAGEMENT"}, model.SectorRealEstate, "real_estate"},
	{[]string{"MORTGAGE BANKERS", "MORTGAGE"}, model.SectorRealEstate, "mortgage"},

	// Crypto and fintech.
	{[]string{"CRYPTO", "COINBASE", "BLOCKCHAIN", "DIGITAL ASSET", "BITCOIN", "RIPPLE"}, model.SectorCrypto, "digital_assets"},
	{[]string{"PAYPAL", "MASTERCARD", "VISA INC", "PAYMENTS", "SQUARE INC", "BLOCK INC", "STRIPE", "FINTECH"}, model.SectorFintech, "payments"},

	// Consumer lending.
	{[]string{"PAYDAY", "CONSUMER LENDING", "INSTALLMENT LENDER", "AUTO FINANCE", "STUDENT LOAN"}, model.SectorConsumerLending, "consumer_lending"},
	{[]string{"CREDIT CARD", "AMERICAN EXPRESS", "DISCOVER FINANCIAL", "CAPITAL ONE", "SYNCHRONY"}, model.SectorConsumerLending, "credit_cards"},

	// Accounting.
	{[]string{"DELOITTE", "ERNST & YOUNG", "KPMG", "PRICEWATERHOUSE", "GRANT THORNTON", "ACCOUNTANTS", "ACCOUNTING", "CPA SOCIETY"}, model.SectorAccounting, "accounting"},
}

// genericHint is a single-token fallback checked only after every specific
// rule missed; always low confidence.
type genericHint struct {
	token     string
	sector    string
	subsector string
}

var genericHints = []genericHint{
	{"BANK", model.SectorBanking, "commercial_bank"},
	{"BANC", model.SectorBanking, "commercial_bank"},
	{"CAPITAL", model.SectorInvestment, "investment_bank"},
	{"FINANCIAL", model.SectorInvestment, "financial_services"},
	{"FINANCE", model.SectorInvestment, "financial_services"},
	{"INVESTORS", model.SectorInvestment, "investment_bank"},
	{"LENDING", model.SectorConsumerLending, "consumer_lending"},
}

// highConfidenceLen: a keyword longer than this is specific enough to grade
// the match high instead of medium.
const highConfidenceLen = 8
