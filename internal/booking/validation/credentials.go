package validation

import (
	"regexp"
	"strconv"

	"bitbucket.org/crgw/booking-quotes/internal/booking"
	"bitbucket.org/crgw/booking-quotes/internal/booking/document"
	"bitbucket.org/crgw/booking-quotes/internal/booking/errors"
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

// ExtractCredentials reads the partner credentials from the first declared
// parameter node.
func ExtractCredentials(root document.Node) (booking.Credentials, error) {
	parameter, ok := root.First(parametersPath)
	if !ok {
		return booking.Credentials{}, errors.New(errors.MissingOrInvalidCredentials, "Missing required parameters")
	}

	username, _ := parameter.Attr("username")
	if username == "" {
		return booking.Credentials{}, errors.New(errors.MissingOrInvalidCredentials, "Username is missing or empty")
	}

	password, _ := parameter.Attr("password")
	if password == "" {
		return booking.Credentials{}, errors.New(errors.MissingOrInvalidCredentials, "Password is missing or empty")
	}

	companyID, _ := parameter.Attr("CompanyID")
	if !digitsPattern.MatchString(companyID) {
		return booking.Credentials{}, errors.New(errors.MissingOrInvalidCredentials, "Company ID is missing, empty or non-numeric")
	}

	id, err := strconv.Atoi(companyID)
	if err != nil || id <= 0 {
		return booking.Credentials{}, errors.New(errors.MissingOrInvalidCredentials, "Company ID must be a positive number")
	}

	return booking.NewCredentials(username, password, id), nil
}

func (r *run) credentials() error {
	credentials, err := ExtractCredentials(r.root)
	if err != nil {
		return err
	}

	r.request.Credentials = credentials
	return nil
}
