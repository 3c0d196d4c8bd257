package research

// coverage is the research team's published view, one entry per ISIN.
var coverage = []Recommendation{
	// Equities.
	{
		ISIN: "US0378331005", Rating: RatingBuy, TargetPrice: 250.00, CurrentPrice: 235.50,
		Analyst: "Tech Research Team", LastUpdated: "2025-07-18", Confidence: "High",
		Rationale:   "Strong iPhone sales and AI integration driving growth",
		RiskFactors: []string{"Supply chain disruptions", "China market exposure"},
	},
	{
		ISIN: "US5949181045", Rating: RatingBuy, TargetPrice: 480.00, CurrentPrice: 445.25,
		Analyst: "Tech Research Team", LastUpdated: "2025-07-17", Confidence: "High",
		Rationale:   "Azure growth and AI leadership position",
		RiskFactors: []string{"Cloud competition", "Regulatory scrutiny"},
	},
	{
		ISIN: "US02079K3059", Rating: RatingNeutral, TargetPrice: 180.00, CurrentPrice: 175.80,
		Analyst: "Tech Research Team", LastUpdated: "2025-07-16", Confidence: "Medium",
		Rationale:   "Search market maturity offset by AI opportunities",
		RiskFactors: []string{"AI competition", "Regulatory challenges"},
	},
	{
		ISIN: "US0231351067", Rating: RatingBuy, TargetPrice: 200.00, CurrentPrice: 185.30,
		Analyst: "Consumer Research Team", LastUpdated: "2025-07-15", Confidence: "High",
		Rationale:   "AWS growth and retail optimization initiatives",
		RiskFactors: []string{"E-commerce competition", "Labor costs"},
	},
	{
		ISIN: "US88160R1014", Rating: RatingSell, TargetPrice: 180.00, CurrentPrice: 195.75,
		Analyst: "Auto Research Team", LastUpdated: "2025-07-19", Confidence: "Medium",
		Rationale:   "EV market competition intensifying, valuation concerns",
		RiskFactors: []string{"Production challenges", "Competition from legacy automakers"},
	},
	{
		ISIN: "US17275R1023", Rating: RatingNeutral, TargetPrice: 55.00, CurrentPrice: 52.40,
		Analyst: "Tech Research Team", LastUpdated: "2025-07-14", Confidence: "Medium",
		Rationale:   "Steady networking demand but limited growth prospects",
		RiskFactors: []string{"Cloud transition", "Competition"},
	},
	{
		ISIN: "US4592001014", Rating: RatingSell, TargetPrice: 35.00, CurrentPrice: 38.90,
		Analyst: "Semiconductor Team", LastUpdated: "2025-07-18", Confidence: "High",
		Rationale:   "Losing market share to AMD and ARM-based solutions",
		RiskFactors: []string{"Technology transition", "Competitive pressure"},
	},
	{
		ISIN: "US67066G1040", Rating: RatingBuy, TargetPrice: 1200.00, CurrentPrice: 1050.00,
		Analyst: "AI Research Team", LastUpdated: "2025-07-19", Confidence: "High",
		Rationale:   "AI chip demand continues to surge, market leadership",
		RiskFactors: []string{"Valuation levels", "Geopolitical tensions"},
	},
	{
		ISIN: "US30303M1027", Rating: RatingNeutral, TargetPrice: 550.00, CurrentPrice: 525.60,
		Analyst: "Tech Research Team", LastUpdated: "2025-07-16", Confidence: "Medium",
		Rationale:   "Metaverse investments vs. core advertising business strength",
		RiskFactors: []string{"Ad market volatility", "Regulatory pressure"},
	},
	{
		ISIN: "US6174464486", Rating: RatingBuy, TargetPrice: 120.00, CurrentPrice: 108.75,
		Analyst: "Financial Services Team", LastUpdated: "2025-07-17", Confidence: "High",
		Rationale:   "Strong wealth management division and rising rates benefit",
		RiskFactors: []string{"Credit losses", "Market volatility"},
	},
	{
		ISIN: "US46625H1005", Rating: RatingBuy, TargetPrice: 190.00, CurrentPrice: 175.20,
		Analyst: "Financial Services Team", LastUpdated: "2025-07-16", Confidence: "High",
		Rationale:   "Diversified revenue streams and strong credit quality",
		RiskFactors: []string{"Interest rate sensitivity", "Loan losses"},
	},

	// Bonds, priced as a percentage of par.
	{
		ISIN: "US912828Z492", Rating: RatingBuy, TargetPrice: 102.50, CurrentPrice: 101.20,
		Analyst: "Fixed Income Team", LastUpdated: "2025-07-18", Confidence: "High",
		Rationale:   "Safe haven amid market volatility, attractive yield",
		RiskFactors: []string{"Duration risk", "Inflation expectations"},
	},
	{
		ISIN: "US9128283H64", Rating: RatingNeutral, TargetPrice: 98.75, CurrentPrice: 97.90,
		Analyst: "Fixed Income Team", LastUpdated: "2025-07-17", Confidence: "Medium",
		Rationale:   "Duration risk vs. yield attractiveness balance",
		RiskFactors: []string{"Interest rate sensitivity", "Inflation"},
	},
	{
		ISIN: "US912828XE94", Rating: RatingBuy, TargetPrice: 103.25, CurrentPrice: 102.10,
		Analyst: "Fixed Income Team", LastUpdated: "2025-07-15", Confidence: "High",
		Rationale:   "Sweet spot for duration and yield balance",
		RiskFactors: []string{"Rate volatility"},
	},
	{
		ISIN: "US037833DX52", Rating: RatingBuy, TargetPrice: 104.25, CurrentPrice: 103.40,
		Analyst: "Credit Research Team", LastUpdated: "2025-07-16", Confidence: "High",
		Rationale:   "Strong corporate fundamentals and credit quality",
		RiskFactors: []string{"Credit spread widening"},
	},
	{
		ISIN: "US594918BY93", Rating: RatingBuy, TargetPrice: 103.80, CurrentPrice: 102.95,
		Analyst: "Credit Research Team", LastUpdated: "2025-07-15", Confidence: "High",
		Rationale:   "Excellent credit quality and attractive yield premium",
		RiskFactors: []string{"Corporate earnings"},
	},
	{
		ISIN: "US02079KAC18", Rating: RatingNeutral, TargetPrice: 101.20, CurrentPrice: 100.85,
		Analyst: "Credit Research Team", LastUpdated: "2025-07-14", Confidence: "Medium",
		Rationale:   "Fair value at current levels, limited upside",
		RiskFactors: []string{"Tech sector volatility"},
	},
	{
		ISIN: "US46647PCK03", Rating: RatingBuy, TargetPrice: 105.10, CurrentPrice: 104.20,
		Analyst: "Financial Services Team", LastUpdated: "2025-07-13", Confidence: "High",
		Rationale:   "Bank strength supports credit, rising rate environment positive",
		RiskFactors: []string{"Credit cycle"},
	},
	{
		ISIN: "US254687FX09", Rating: RatingSell, TargetPrice: 96.50, CurrentPrice: 98.75,
		Analyst: "Media Research Team", LastUpdated: "2025-07-18", Confidence: "Medium",
		Rationale:   "Streaming competition pressures and cord-cutting trends",
		RiskFactors: []string{"Content costs", "Subscriber growth"},
	},
	{
		ISIN: "US717081EX73", Rating: RatingNeutral, TargetPrice: 102.00, CurrentPrice: 101.60,
		Analyst: "Healthcare Team", LastUpdated: "2025-07-17", Confidence: "Medium",
		Rationale:   "Stable pharma fundamentals but limited growth catalysts",
		RiskFactors: []string{"Drug pricing pressure"},
	},
}

// defaultCoverage indexes coverage by ISIN. At most one recommendation is
// active per ISIN; later entries win.
var defaultCoverage = func() map[string]Recommendation {
	m := make(map[string]Recommendation, len(coverage))
	for _, r := range coverage {
		r.Covered = true
		m[r.ISIN] = r
	}

	return m
}()
