package schema

import (
	"encoding/xml"
	"net/http"

	"bitbucket.org/crgw/booking-quotes/internal/booking/errors"
)

const GenericErrorType = "InternalError"

// ApplicationErrors is the XML document returned instead of quotes when a
// request can not be answered.
type ApplicationErrors struct {
	XMLName        xml.Name `xml:"applicationErrors"`
	Code           int      `xml:"code"`
	Type           string   `xml:"type"`
	Description    string   `xml:"description"`
	HTTPStatusCode int      `xml:"httpStatusCode"`
}

func NewApplicationErrors(fault *errors.Fault) ApplicationErrors {
	return ApplicationErrors{
		Code:           fault.Code,
		Type:           fault.Kind.String(),
		Description:    fault.Message,
		HTTPStatusCode: fault.HTTPStatus,
	}
}

// NewGenericApplicationErrors describes a failure which is not caused by the
// request content.
func NewGenericApplicationErrors(description string) ApplicationErrors {
	return ApplicationErrors{
		Type:           GenericErrorType,
		Description:    description,
		HTTPStatusCode: http.StatusInternalServerError,
	}
}

func (a ApplicationErrors) Marshal() ([]byte, error) {
	body, err := xml.Marshal(a)
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}
