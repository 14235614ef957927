package validation

import (
	"bitbucket.org/crgw/booking-quotes/internal/booking"
	"bitbucket.org/crgw/booking-quotes/internal/booking/errors"
	"bitbucket.org/crgw/booking-quotes/internal/rules"
	"bitbucket.org/crgw/booking-quotes/internal/tools/converting"
)

// enum returns the allowed value found at path. An absent or empty field
// falls back to the first allowed value, an unknown one is a fault.
func (r *run) enum(path string, allowed []string, property string) (string, error) {
	node, ok := r.root.First(path)
	if !ok {
		return allowed[0], nil
	}

	value := node.Text()
	if value == "" {
		return allowed[0], nil
	}

	if !rules.Allowed(allowed, value) {
		return "", errors.New(errors.MissingOrInvalidField, "Invalid %s value: '%s'", property, value)
	}

	return value, nil
}

type numericRule struct {
	property string
	min      *int
	max      *int
	fallback *int
}

// integer reads a whole number at path. Fractions are truncated.
func (r *run) integer(path string, rule numericRule) (int, error) {
	node, ok := r.root.First(path)
	if !ok {
		if rule.fallback != nil {
			return *rule.fallback, nil
		}

		return 0, errors.New(errors.MissingOrInvalidField, "Missing '%s'", rule.property)
	}

	number, ok := converting.ParseNumeric(node.Text())
	if !ok {
		return 0, errors.New(errors.NonNumericField, "'%s' must be a number", rule.property)
	}

	value, ok := converting.TruncateInt(number)
	if !ok {
		return 0, errors.New(errors.OutOfRangeNumeric, "'%s' value is out of range", rule.property)
	}

	if rule.min != nil && value < *rule.min {
		return 0, errors.New(errors.OutOfRangeNumeric, "Minimum '%s' value is %d, got %d", rule.property, *rule.min, value)
	}

	if rule.max != nil && value > *rule.max {
		return 0, errors.New(errors.OutOfRangeNumeric, "Maximum '%s' value is %d, got %d", rule.property, *rule.max, value)
	}

	return value, nil
}

func (r *run) languageCode() error {
	value, err := r.enum(languageCodePath, r.rules.LanguageCodes, "language")
	if err != nil {
		return err
	}

	r.request.LanguageCode = value
	return nil
}

func (r *run) optionsQuota() error {
	value, err := r.integer(optionsQuotaPath, numericRule{
		property: "options quota",
		max:      converting.PointerToValue(r.rules.OptionsQuotaMax),
		fallback: converting.PointerToValue(r.rules.OptionsQuotaDefault),
	})
	if err != nil {
		return err
	}

	r.request.OptionsQuota = value
	return nil
}

func (r *run) searchType() error {
	value, err := r.enum(searchTypePath, booking.SearchTypes, "search type")
	if err != nil {
		return err
	}

	r.request.SearchType = booking.SearchType(value)
	return nil
}

func (r *run) currency() error {
	value, err := r.enum(currencyPath, r.rules.Currencies, "currency")
	if err != nil {
		return err
	}

	r.request.Currency = value
	return nil
}

func (r *run) nationality() error {
	value, err := r.enum(nationalityPath, r.rules.Nationalities, "nationality")
	if err != nil {
		return err
	}

	r.request.Nationality = value
	return nil
}

func (r *run) market() error {
	value, err := r.enum(marketPath, r.rules.Markets, "market")
	if err != nil {
		return err
	}

	r.request.Market = value
	return nil
}

func (r *run) markup() error {
	node, ok := r.root.First(markupPath)
	if !ok {
		return errors.New(errors.MissingMarkup, "Missing markup")
	}

	value, ok := converting.ParseNumeric(node.Text())
	if !ok {
		return errors.New(errors.NonNumericField, "Markup must be a number")
	}

	r.request.Markup = value
	return nil
}
