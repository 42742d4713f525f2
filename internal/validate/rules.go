package validate

import "github.com/sells-group/salesfit/internal/model"

// scoreBand is the maximum overall and per-dimension score allowed for a
// compatibility verdict.
type scoreBand struct {
	Overall   int
	Dimension float64
}

var maxScoresByVerdict = map[model.Verdict]scoreBand{
	model.VerdictIncompatible: {Overall: 20, Dimension: 3},
	model.VerdictChallenging:  {Overall: 50, Dimension: 6},
	model.VerdictModerate:     {Overall: 75, Dimension: 8},
	model.VerdictCompatible:   {Overall: 100, Dimension: 10},
}

const (
	// Overall must stay within 20% of the weighted dimension average.
	overallVarianceAllowed = 0.2
	// No dimension may sit more than 3 points from the dimension mean.
	dimensionVarianceAllowed = 3.0

	minConfidence = 10
	maxConfidence = 100
)

// problematicKeywords and enterpriseKeywords drive the hard sanity rule:
// a seller matching the first list can never score high against a buyer
// matching the second.
var problematicKeywords = []string{"porn", "adult", "xxx", "escort", "cannabis", "weed"}

var enterpriseKeywords = []string{"oracle", "microsoft", "ibm", "government", "federal"}

// rivalPairs lists pairings that are capped at 45 overall no matter what
// upstream scoring produced.
var rivalPairs = [][2]string{
	{"microsoft", "google"},
	{"oracle", "salesforce"},
	{"amazon", "microsoft"},
	{"uber", "lyft"},
}
