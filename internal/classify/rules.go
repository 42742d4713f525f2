package classify

import "github.com/sells-group/salesfit/internal/model"

// IndustryRule maps a keyword list to an industry category and its risk
// profile. Matching is naive substring containment over the lower-cased
// company name plus description.
type IndustryRule struct {
	Category             string           `yaml:"category"`
	Keywords             []string         `yaml:"keywords"`
	RiskLevel            int              `yaml:"risk_level"`
	EnterpriseCompatible model.CompatFlag `yaml:"enterprise_compatible"`
	GovernmentCompatible model.CompatFlag `yaml:"government_compatible"`
	Description          string           `yaml:"description"`
}

// BuyerRule maps a keyword list to a buyer archetype profile.
type BuyerRule struct {
	Type                   model.BuyerType `yaml:"type"`
	Keywords               []string        `yaml:"keywords"`
	ConservatismLevel      int             `yaml:"conservatism_level"`
	ComplianceRequirements string          `yaml:"compliance_requirements"`
	VendorScreening        string          `yaml:"vendor_screening"`
	ReputationSensitivity  int             `yaml:"reputation_sensitivity"`
}

// Ruleset holds the ordered classification tiers. Tier order is
// authoritative: high-risk rules are checked before medium-risk, medium
// before low, and the first rule whose keyword list hits wins outright.
type Ruleset struct {
	HighRisk     []IndustryRule `yaml:"high_risk"`
	MediumRisk   []IndustryRule `yaml:"medium_risk"`
	LowRisk      []IndustryRule `yaml:"low_risk"`
	SpecialCases []IndustryRule `yaml:"special_cases"`
	Buyers       []BuyerRule    `yaml:"buyers"`
}

// DefaultRuleset returns the built-in classification rules.
func DefaultRuleset() Ruleset {
	return Ruleset{
		HighRisk: []IndustryRule{
			{
				Category:             "adult_entertainment",
				Keywords:             []string{"adult", "porn", "pornography", "xxx", "escort", "sex", "erotic", "nude", "onlyfans", "strip club", "cam"},
				RiskLevel:            10,
				EnterpriseCompatible: model.CompatFalse,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Adult entertainment and related services",
			},
			{
				Category:             "gambling",
				Keywords:             []string{"casino", "gambling", "betting", "lottery", "poker", "sportsbook", "wagering", "bookmaker"},
				RiskLevel:            9,
				EnterpriseCompatible: model.CompatFalse,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Gambling and betting services",
			},
			{
				Category:             "cannabis",
				Keywords:             []string{"cannabis", "marijuana", "weed", "thc", "cbd", "dispensary", "hemp"},
				RiskLevel:            8,
				EnterpriseCompatible: model.CompatFalse,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Cannabis and related products",
			},
			{
				Category:             "weapons",
				Keywords:             []string{"weapons", "firearms", "guns", "ammunition", "explosives", "military weapons", "assault"},
				RiskLevel:            9,
				EnterpriseCompatible: model.CompatFalse,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Weapons and firearms",
			},
			{
				Category:             "tobacco",
				Keywords:             []string{"tobacco", "cigarette", "cigar", "smoking", "nicotine", "vaping", "e-cigarette", "juul"},
				RiskLevel:            7,
				EnterpriseCompatible: model.CompatFalse,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Tobacco and vaping products",
			},
			{
				Category:             "crypto_unregulated",
				Keywords:             []string{"crypto scam", "ponzi", "pyramid", "mlm", "get rich quick", "bitcoin mining scheme"},
				RiskLevel:            10,
				EnterpriseCompatible: model.CompatFalse,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Unregulated crypto and potential scams",
			},
		},
		MediumRisk: []IndustryRule{
			{
				Category:             "alcohol",
				Keywords:             []string{"alcohol", "liquor", "beer", "wine", "spirits", "brewery", "distillery"},
				RiskLevel:            5,
				EnterpriseCompatible: model.CompatLimited,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Alcohol production and distribution",
			},
			{
				Category:             "political",
				Keywords:             []string{"political party", "campaign", "lobbying", "political action"},
				RiskLevel:            6,
				EnterpriseCompatible: model.CompatLimited,
				GovernmentCompatible: model.CompatLimited,
				Description:          "Political organizations and campaigns",
			},
			{
				Category:             "religious",
				Keywords:             []string{"church", "mosque", "temple", "religious", "faith-based", "ministry"},
				RiskLevel:            4,
				EnterpriseCompatible: model.CompatLimited,
				GovernmentCompatible: model.CompatLimited,
				Description:          "Religious organizations",
			},
			{
				Category:             "dating",
				Keywords:             []string{"dating", "matchmaking", "singles", "romance", "tinder", "bumble", "hinge"},
				RiskLevel:            5,
				EnterpriseCompatible: model.CompatLimited,
				GovernmentCompatible: model.CompatFalse,
				Description:          "Dating and matchmaking services",
			},
		},
		LowRisk: []IndustryRule{
			{
				Category:             "technology",
				Keywords:             []string{"software", "saas", "tech", "it", "cloud", "ai", "machine learning", "data"},
				RiskLevel:            1,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Technology and software companies",
			},
			{
				Category:             "consulting",
				Keywords:             []string{"consulting", "advisory", "professional services", "strategy", "management"},
				RiskLevel:            1,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Consulting and professional services",
			},
			{
				Category:             "healthcare",
				Keywords:             []string{"healthcare", "medical", "hospital", "clinic", "health", "pharma", "biotech"},
				RiskLevel:            2,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Healthcare and medical services",
			},
			{
				Category:             "finance",
				Keywords:             []string{"bank", "finance", "investment", "insurance", "fintech", "payment", "lending"},
				RiskLevel:            2,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Financial services",
			},
			{
				Category:             "education",
				Keywords:             []string{"education", "university", "school", "training", "learning", "edtech"},
				RiskLevel:            1,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Education and training",
			},
			{
				Category:             "retail",
				Keywords:             []string{"retail", "ecommerce", "shopping", "store", "marketplace", "consumer goods"},
				RiskLevel:            2,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Retail and consumer goods",
			},
			{
				Category:             "manufacturing",
				Keywords:             []string{"manufacturing", "factory", "production", "industrial", "supply chain"},
				RiskLevel:            2,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Manufacturing and industrial",
			},
		},
		// Well-known company names that the generic keyword lists miss.
		// Checked after all risk tiers so a descriptive keyword hit still
		// wins over a name match.
		SpecialCases: []IndustryRule{
			{
				Category:             "oil_gas",
				Keywords:             []string{"exxon", "exxonmobil", "chevron", "shell oil", "halliburton", "conocophillips", "oil", "petroleum", "drilling", "fracking"},
				RiskLevel:            4,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Oil and gas",
			},
			{
				Category:             "green_tech",
				Keywords:             []string{"tesla", "rivian", "sunpower", "solar", "renewable", "clean energy", "wind power", "ev charging"},
				RiskLevel:            1,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Green technology and renewable energy",
			},
			{
				Category:             "traditional_retail",
				Keywords:             []string{"walmart", "kmart", "macys", "sears", "jcpenney", "kohls", "brick and mortar"},
				RiskLevel:            2,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Traditional brick-and-mortar retail",
			},
			{
				Category:             "ecommerce",
				Keywords:             []string{"amazon", "ebay", "shopify", "alibaba", "etsy", "online retail"},
				RiskLevel:            2,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "E-commerce",
			},
			{
				Category:             "fast_food",
				Keywords:             []string{"mcdonald", "burger king", "kfc", "taco bell", "wendy", "fast food"},
				RiskLevel:            3,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatLimited,
				Description:          "Fast food",
			},
			{
				Category:             "health_food",
				Keywords:             []string{"sweetgreen", "whole foods", "health food", "organic food", "juice bar", "wellness food"},
				RiskLevel:            1,
				EnterpriseCompatible: model.CompatTrue,
				GovernmentCompatible: model.CompatTrue,
				Description:          "Health food and wellness",
			},
		},
		Buyers: []BuyerRule{
			{
				Type:                   model.BuyerFortune500,
				Keywords:               []string{"oracle", "microsoft", "amazon", "google", "apple", "ibm", "salesforce", "adobe", "cisco", "intel", "meta", "walmart", "jpmorgan", "berkshire"},
				ConservatismLevel:      9,
				ComplianceRequirements: "very_high",
				VendorScreening:        "strict",
				ReputationSensitivity:  10,
			},
			{
				Type:                   model.BuyerGovernment,
				Keywords:               []string{"federal", "government", "state", "city", "county", "municipal", "defense", "military", "pentagon", "fbi", "cia", "nsa", "dhs"},
				ConservatismLevel:      10,
				ComplianceRequirements: "maximum",
				VendorScreening:        "maximum",
				ReputationSensitivity:  10,
			},
			{
				Type:                   model.BuyerHealthcare,
				Keywords:               []string{"hospital", "medical center", "clinic", "health system", "kaiser", "mayo clinic", "cleveland clinic"},
				ConservatismLevel:      8,
				ComplianceRequirements: "very_high",
				VendorScreening:        "strict",
				ReputationSensitivity:  9,
			},
			{
				Type:                   model.BuyerFinancial,
				Keywords:               []string{"bank", "capital", "investment", "insurance", "goldman", "morgan stanley", "wells fargo", "chase", "citi"},
				ConservatismLevel:      9,
				ComplianceRequirements: "very_high",
				VendorScreening:        "strict",
				ReputationSensitivity:  9,
			},
			{
				Type:                   model.BuyerEducation,
				Keywords:               []string{"university", "college", "school", "academy", "institute", "harvard", "stanford", "mit"},
				ConservatismLevel:      7,
				ComplianceRequirements: "high",
				VendorScreening:        "moderate",
				ReputationSensitivity:  8,
			},
			{
				Type:                   model.BuyerStartup,
				Keywords:               []string{"startup", "ventures", "labs", "innovation", "disrupt"},
				ConservatismLevel:      3,
				ComplianceRequirements: "low",
				VendorScreening:        "flexible",
				ReputationSensitivity:  4,
			},
		},
	}
}

// standardBuyer is the default archetype when no buyer keyword matches.
func standardBuyer() model.BuyerClassification {
	return model.BuyerClassification{
		Type:                   model.BuyerStandard,
		ConservatismLevel:      5,
		ComplianceRequirements: "moderate",
		VendorScreening:        "standard",
		ReputationSensitivity:  5,
	}
}

// unknownIndustry is the fallback when no industry keyword matches.
func unknownIndustry() model.IndustryClassification {
	return model.IndustryClassification{
		Category:             "unknown",
		RiskLevel:            5,
		RiskCategory:         model.RiskUnknown,
		EnterpriseCompatible: model.CompatLimited,
		GovernmentCompatible: model.CompatLimited,
		Description:          "Unclassified industry",
	}
}
