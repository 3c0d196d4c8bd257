package clients

import "github.com/wagiedev/wealth-mcp-go/internal/money"

// registry is the fixed list of advisory clients, in identifier order.
var registry = []Client{
	{
		ID: "BZ-00001", Name: "Maria Sklodowska-Curie", RiskProfile: Conservative,
		AUM: money.USD(2_500_000), Currency: money.USDCode, OnboardingDate: "2023-03-15", LastReview: "2025-06-10",
		Status: StatusActive, AdvisorNotes: "Prefers stable, dividend-paying securities",
	},
	{
		ID: "BZ-00002", Name: "Lech Wałęsa", RiskProfile: Balanced,
		AUM: money.USD(1_800_000), Currency: money.USDCode, OnboardingDate: "2024-01-20", LastReview: "2025-07-05",
		Status: StatusActive, AdvisorNotes: "Interested in ESG investing",
	},
	{
		ID: "BZ-00003", Name: "Fryderyk Chopin", RiskProfile: Aggressive,
		AUM: money.USD(5_200_000), Currency: money.USDCode, OnboardingDate: "2022-11-08", LastReview: "2025-07-15",
		Status: StatusActive, AdvisorNotes: "Tech sector focus, high risk tolerance",
	},
	{
		ID: "BZ-00004", Name: "Nicolaus Copernicus", RiskProfile: Conservative,
		AUM: money.USD(950_000), Currency: money.USDCode, OnboardingDate: "2024-05-12", LastReview: "2025-05-20",
		Status: StatusUnderReview, AdvisorNotes: "Retirement planning focus",
	},
	{
		ID: "BZ-00005", Name: "Andrzej Wajda", RiskProfile: Balanced,
		AUM: money.USD(3_100_000), Currency: money.USDCode, OnboardingDate: "2023-09-03", LastReview: "2025-07-08",
		Status: StatusActive, AdvisorNotes: "Balanced approach, quarterly rebalancing",
	},
	{
		ID: "BZ-00006", Name: "Wisława Szymborska", RiskProfile: Aggressive,
		AUM: money.USD(4_750_000), Currency: money.USDCode, OnboardingDate: "2024-02-28", LastReview: "2025-06-25",
		Status: StatusActive, AdvisorNotes: "Growth stocks and emerging markets",
	},
	{
		ID: "BZ-00007", Name: "Krzysztof Kieślowski", RiskProfile: Conservative,
		AUM: money.USD(1_200_000), Currency: money.USDCode, OnboardingDate: "2023-07-19", LastReview: "2025-04-18",
		Status: StatusActive, AdvisorNotes: "Fixed income preference",
	},
	{
		ID: "BZ-00008", Name: "Stanisław Lem", RiskProfile: Balanced,
		AUM: money.USD(2_800_000), Currency: money.USDCode, OnboardingDate: "2024-04-05", LastReview: "2025-07-12",
		Status: StatusActive, AdvisorNotes: "Education funding goals",
	},
	{
		ID: "BZ-00009", Name: "Jerzy Grotowski", RiskProfile: Aggressive,
		AUM: money.USD(6_100_000), Currency: money.USDCode, OnboardingDate: "2022-06-14", LastReview: "2025-07-18",
		Status: StatusActive, AdvisorNotes: "Options trading approved",
	},
	{
		ID: "BZ-00010", Name: "Henryk Górecki", RiskProfile: Conservative,
		AUM: money.USD(1_450_000), Currency: money.USDCode, OnboardingDate: "2024-06-01", LastReview: "2025-06-30",
		Status: StatusActive, AdvisorNotes: "Capital preservation priority",
	},
}
