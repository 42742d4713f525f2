package research

import "github.com/sells-group/salesfit/internal/model"

// dimensionReferences maps each scorecard dimension to stable background
// reading. The URLs are encyclopedia and finance-glossary pages chosen
// not to rot.
var dimensionReferences = map[string][]model.Source{
	model.DimMarketAlignment: {
		{
			URL:     "https://en.wikipedia.org/wiki/Strategic_partnership",
			Type:    "reference",
			Title:   "Wikipedia - Strategic Partnership",
			Snippet: "A strategic partnership is a relationship between two commercial enterprises, usually formalized by one or more business contracts.",
		},
		{
			URL:     "https://www.investopedia.com/terms/s/strategicalliance.asp",
			Type:    "reference",
			Title:   "Investopedia - Strategic Alliance",
			Snippet: "A strategic alliance is an arrangement between two companies to undertake a mutually beneficial project while each retains its independence.",
		},
		{
			URL:     "https://en.wikipedia.org/wiki/Business-to-business",
			Type:    "reference",
			Title:   "Wikipedia - Business-to-Business",
			Snippet: "B2B transactions involve multi-step processes including need identification, vendor evaluation, purchase approval, and ongoing relationship management.",
		},
	},
	model.DimBudgetReadiness: {
		{
			URL:     "https://en.wikipedia.org/wiki/IT_budget",
			Type:    "reference",
			Title:   "Wikipedia - IT Budget",
			Snippet: "IT budgets typically represent 3-5% of organizational revenue, with allocations varying by industry, size, and digital maturity.",
		},
		{
			URL:     "https://www.investopedia.com/terms/c/capitalbudgeting.asp",
			Type:    "reference",
			Title:   "Investopedia - Capital Budgeting",
			Snippet: "Capital budgeting involves evaluating potential major projects or investments using techniques like NPV, IRR, and payback period.",
		},
	},
	model.DimTechnologyFit: {
		{
			URL:     "https://en.wikipedia.org/wiki/System_integration",
			Type:    "reference",
			Title:   "Wikipedia - Systems Integration",
			Snippet: "System integration involves linking different computing systems and software applications physically or functionally.",
		},
		{
			URL:     "https://en.wikipedia.org/wiki/Enterprise_architecture",
			Type:    "reference",
			Title:   "Wikipedia - Enterprise Architecture",
			Snippet: "Technology fit requires alignment with existing architecture principles and standards.",
		},
		{
			URL:     "https://en.wikipedia.org/wiki/Technology_adoption_life_cycle",
			Type:    "reference",
			Title:   "Wikipedia - Technology Adoption Lifecycle",
			Snippet: "Organizations evaluate compatibility, complexity, trialability, and observable results before implementation decisions.",
		},
	},
	model.DimCompetitivePosition: {
		{
			URL:     "https://en.wikipedia.org/wiki/Competitive_advantage",
			Type:    "reference",
			Title:   "Wikipedia - Competitive Advantage",
			Snippet: "Competitive advantage refers to factors that allow a company to produce goods or services better or more cheaply than rivals.",
		},
		{
			URL:     "https://www.investopedia.com/terms/c/competitive_advantage.asp",
			Type:    "reference",
			Title:   "Investopedia - Competitive Advantage",
			Snippet: "Competitive advantages allow a company to achieve superior margins compared to its competition.",
		},
	},
	model.DimImplementationReadiness: {
		{
			URL:     "https://en.wikipedia.org/wiki/Change_management",
			Type:    "reference",
			Title:   "Wikipedia - Change Management",
			Snippet: "Change management approaches prepare, support, and help individuals, teams, and organizations in making organizational change.",
		},
		{
			URL:     "https://en.wikipedia.org/wiki/Project_management",
			Type:    "reference",
			Title:   "Wikipedia - Project Management",
			Snippet: "Implementation success depends on scope definition, resource allocation, and stakeholder alignment.",
		},
	},
}

// DimensionReferences returns the background reading for one scorecard
// dimension. Unknown dimension names yield nil.
func DimensionReferences(dimension string) []model.Source {
	return dimensionReferences[dimension]
}
