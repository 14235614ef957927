package validation_test

import (
	"strings"
	"testing"

	"bitbucket.org/crgw/booking-quotes/internal/booking/document"
	bookingErrors "bitbucket.org/crgw/booking-quotes/internal/booking/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fields map[string]string

var fieldOrder = []string{
	"language",
	"optionsQuota",
	"parameters",
	"searchType",
	"allowedHotelCount",
	"destinations",
	"startDate",
	"endDate",
	"currency",
	"nationality",
	"market",
	"allowedGuests",
	"allowedChildren",
	"rooms",
	"markup",
}

// validFields describes a document with one destination HTL1, a five day stay
// and one room with a single adult.
func validFields() fields {
	return fields{
		"language":          "<source><languageCode>en</languageCode></source>",
		"optionsQuota":      "<optionsQuota>20</optionsQuota>",
		"parameters":        `<Configuration><Parameters><Parameter username="user" password="secret" CompanyID="1234"/></Parameters></Configuration>`,
		"searchType":        "<SearchType>Single</SearchType>",
		"allowedHotelCount": "<AllowedHotelCount>1</AllowedHotelCount>",
		"destinations":      `<AvailDestinations><Destination code="HTL1"/></AvailDestinations>`,
		"startDate":         "<StartDate>2026-11-01</StartDate>",
		"endDate":           "<EndDate>2026-11-06</EndDate>",
		"currency":          "<Currency>USD</Currency>",
		"nationality":       "<Nationality>US</Nationality>",
		"market":            "<Markets><Market>US</Market></Markets>",
		"allowedGuests":     "<AllowedRoomGuestCount>2</AllowedRoomGuestCount>",
		"allowedChildren":   "<AllowedChildCountPerRoom>1</AllowedChildCountPerRoom>",
		"rooms":             `<Paxes><Pax age="30"/></Paxes>`,
		"markup":            "<Markup>10</Markup>",
	}
}

// with returns a copy with key replaced. An empty value drops the field.
func (f fields) with(key string, value string) fields {
	copied := make(fields, len(f))
	for k, v := range f {
		copied[k] = v
	}
	copied[key] = value

	return copied
}

func (f fields) xml() string {
	var builder strings.Builder
	builder.WriteString("<AvailRQ>")
	for _, key := range fieldOrder {
		builder.WriteString(f[key])
	}
	builder.WriteString("</AvailRQ>")

	return builder.String()
}

func (f fields) document(t *testing.T) document.Node {
	root, err := document.Load([]byte(f.xml()))
	require.NoError(t, err)

	return root
}

func assertFault(t *testing.T, err error, kind bookingErrors.Kind, message string) {
	t.Helper()

	fault, ok := bookingErrors.AsFault(err)
	require.True(t, ok, "expected a fault, got %v", err)
	assert.Equal(t, kind, fault.Kind)
	assert.Equal(t, message, fault.Message)
}
