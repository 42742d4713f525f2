package classify

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// rulesFile is the YAML shape of a rule override file. Only the sections
// present in the file replace their built-in counterparts; omitted
// sections keep the defaults.
type rulesFile struct {
	HighRisk     []IndustryRule `yaml:"high_risk"`
	MediumRisk   []IndustryRule `yaml:"medium_risk"`
	LowRisk      []IndustryRule `yaml:"low_risk"`
	SpecialCases []IndustryRule `yaml:"special_cases"`
	Buyers       []BuyerRule    `yaml:"buyers"`
}

// LoadRules reads a YAML rule override file and merges it over the
// built-in ruleset.
func LoadRules(path string) (Ruleset, error) {
	rules := DefaultRuleset()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, eris.Wrapf(err, "classify: read rules file %s", path)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return rules, eris.Wrapf(err, "classify: parse rules file %s", path)
	}

	if len(f.HighRisk) > 0 {
		rules.HighRisk = f.HighRisk
	}
	if len(f.MediumRisk) > 0 {
		rules.MediumRisk = f.MediumRisk
	}
	if len(f.LowRisk) > 0 {
		rules.LowRisk = f.LowRisk
	}
	if len(f.SpecialCases) > 0 {
		rules.SpecialCases = f.SpecialCases
	}
	if len(f.Buyers) > 0 {
		rules.Buyers = f.Buyers
	}

	return rules, nil
}
