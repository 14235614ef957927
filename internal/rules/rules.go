package rules

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// RuleSet is the catalogue of allowed values and numeric bounds a booking
// request is validated against. It is loaded once and only read afterwards.
type RuleSet struct {
	LanguageCodes []string `yaml:"languageCodes" validate:"required,min=1,dive,required"`
	Currencies    []string `yaml:"currencies" validate:"required,min=1,dive,len=3"`
	Nationalities []string `yaml:"nationalities" validate:"required,min=1,dive,required"`
	Markets       []string `yaml:"markets" validate:"required,min=1,dive,required"`

	OptionsQuotaDefault int `yaml:"optionsQuotaDefault" validate:"gte=0,ltefield=OptionsQuotaMax"`
	OptionsQuotaMax     int `yaml:"optionsQuotaMax" validate:"gt=0"`

	EarliestStartDays int `yaml:"earliestStartDays" validate:"gte=0"`
	MinStayDays       int `yaml:"minStayDays" validate:"gte=0"`

	MaxChildAge int `yaml:"maxChildAge" validate:"gte=0"`

	Discount float64 `yaml:"discount" validate:"gt=0,lte=1"`
}

// Allowed reports whether value is one of the allowed entries.
func Allowed(allowed []string, value string) bool {
	return slices.Contains(allowed, value)
}

// IsChild reports whether a passenger of the given age counts as a child.
func (r RuleSet) IsChild(age float64) bool {
	return age <= float64(r.MaxChildAge)
}

func Parse(content []byte) (RuleSet, error) {
	var ruleSet RuleSet

	err := yaml.Unmarshal(content, &ruleSet)
	if err != nil {
		return RuleSet{}, fmt.Errorf("parsing rules: %w", err)
	}

	err = validator.New().Struct(ruleSet)
	if err != nil {
		return RuleSet{}, fmt.Errorf("invalid rules: %w", err)
	}

	return ruleSet, nil
}

// Load reads the rule set from location, or the built-in one when location is empty.
func Load(location string) (RuleSet, error) {
	if location == "" {
		return Parse(defaultRules)
	}

	content, err := os.ReadFile(location)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules: %w", err)
	}

	return Parse(content)
}

// Default returns the built-in rule set.
func Default() RuleSet {
	ruleSet, err := Parse(defaultRules)
	if err != nil {
		panic(err)
	}

	return ruleSet
}
