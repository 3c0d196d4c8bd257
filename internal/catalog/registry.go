package catalog

// registry is the internal list of all known securities.
var registry = []Security{
	// Technology and consumer equities.
	{ISIN: "US0378331005", Kind: KindEquity, Name: "Apple Inc.", Sector: "Technology", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US5949181045", Kind: KindEquity, Name: "Microsoft Corp.", Sector: "Technology", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US02079K3059", Kind: KindEquity, Name: "Alphabet Inc.", Sector: "Technology", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US0231351067", Kind: KindEquity, Name: "Amazon.com Inc.", Sector: "Consumer Discretionary", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US88160R1014", Kind: KindEquity, Name: "Tesla Inc.", Sector: "Consumer Discretionary", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US17275R1023", Kind: KindEquity, Name: "Cisco Systems Inc.", Sector: "Technology", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US4592001014", Kind: KindEquity, Name: "Intel Corp.", Sector: "Technology", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US67066G1040", Kind: KindEquity, Name: "NVIDIA Corp.", Sector: "Technology", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},
	{ISIN: "US30303M1027", Kind: KindEquity, Name: "Meta Platforms Inc.", Sector: "Technology", Currency: "USD", Exchange: "NASDAQ", MarketCap: "large"},

	// Financials and defensives.
	{ISIN: "US6174464486", Kind: KindEquity, Name: "Morgan Stanley", Sector: "Financial Services", Currency: "USD", Exchange: "NYSE", MarketCap: "large"},
	{ISIN: "US46625H1005", Kind: KindEquity, Name: "JPMorgan Chase & Co.", Sector: "Financial Services", Currency: "USD", Exchange: "NYSE", MarketCap: "large"},
	{ISIN: "US4781601046", Kind: KindEquity, Name: "Johnson & Johnson", Sector: "Healthcare", Currency: "USD", Exchange: "NYSE", MarketCap: "large"},
	{ISIN: "US7427181091", Kind: KindEquity, Name: "Procter & Gamble Co.", Sector: "Consumer Staples", Currency: "USD", Exchange: "NYSE", MarketCap: "large"},

	// Government bonds.
	{ISIN: "US912828Z492", Kind: KindBond, Name: "US Treasury 10Y", Sector: "Government", Currency: "USD", Maturity: "2034-05-15", CreditRating: "AAA", Yield: 4.2},
	{ISIN: "US9128283H64", Kind: KindBond, Name: "US Treasury 30Y", Sector: "Government", Currency: "USD", Maturity: "2054-02-15", CreditRating: "AAA", Yield: 4.4},
	{ISIN: "US912828XE94", Kind: KindBond, Name: "US Treasury 5Y", Sector: "Government", Currency: "USD", Maturity: "2030-01-31", CreditRating: "AAA", Yield: 4.0},

	// Corporate bonds.
	{ISIN: "US037833DX52", Kind: KindBond, Name: "Apple Inc. Corporate Bond", Sector: "Technology", Currency: "USD", Maturity: "2032-02-23", CreditRating: "AA+", Yield: 3.8},
	{ISIN: "US594918BY93", Kind: KindBond, Name: "Microsoft Corporate Bond", Sector: "Technology", Currency: "USD", Maturity: "2031-06-01", CreditRating: "AAA", Yield: 3.6},
	{ISIN: "US02079KAC18", Kind: KindBond, Name: "Alphabet Corporate Bond", Sector: "Technology", Currency: "USD", Maturity: "2030-08-15", CreditRating: "AA+", Yield: 3.7},
	{ISIN: "US46647PCK03", Kind: KindBond, Name: "JPMorgan Chase Bond", Sector: "Financial Services", Currency: "USD", Maturity: "2029-04-23", CreditRating: "A+", Yield: 4.1},
	{ISIN: "US254687FX09", Kind: KindBond, Name: "Disney Corporate Bond", Sector: "Communication Services", Currency: "USD", Maturity: "2028-12-01", CreditRating: "A", Yield: 4.3},
	{ISIN: "US717081EX73", Kind: KindBond, Name: "Pfizer Corporate Bond", Sector: "Healthcare", Currency: "USD", Maturity: "2033-03-15", CreditRating: "AA", Yield: 3.9},
}

// index maps ISIN to position in registry.
var index = func() map[string]int {
	m := make(map[string]int, len(registry))
	for i, s := range registry {
		m[s.ISIN] = i
	}

	return m
}()
