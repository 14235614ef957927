package validation

import (
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/booking"
	"bitbucket.org/crgw/booking-quotes/internal/booking/errors"
	"github.com/araddon/dateparse"
)

func (r *run) allowedHotels() error {
	value, err := r.integer(allowedHotelCountPath, numericRule{property: "allowed hotel count"})
	if err != nil {
		return err
	}

	r.allowedHotelCount = value
	return nil
}

func (r *run) destinations() error {
	nodes := r.root.Query(destinationsPath)
	if len(nodes) == 0 {
		return errors.New(errors.DestinationCountViolation, "Missing required destinations")
	}

	if r.request.SearchType != booking.SearchTypeMultiple && len(nodes) > 1 {
		return errors.New(errors.DestinationCountViolation, "Single search cannot request multiple destinations")
	}

	if len(nodes) > r.allowedHotelCount {
		return errors.New(errors.DestinationCountViolation, "Number of requested destinations exceed the allowed hotels count: %d", r.allowedHotelCount)
	}

	destinations := make([]booking.Destination, len(nodes))
	for i, node := range nodes {
		code, _ := node.Attr("code")
		if code == "" {
			return errors.New(errors.MissingOrInvalidField, "Destination code is missing or empty")
		}

		destinations[i] = booking.Destination{Code: code}
	}

	r.request.Destinations = destinations
	return nil
}

func (r *run) date(path string, name string) (time.Time, error) {
	node, ok := r.root.First(path)
	if !ok {
		return time.Time{}, errors.New(errors.MissingOrInvalidField, "Missing %s date", name)
	}

	text := node.Text()
	if text == "" {
		return time.Time{}, errors.NewBadRequest(errors.DateParseFailure, nil, "Error parsing date: empty %s date", name)
	}

	value, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return time.Time{}, errors.NewBadRequest(errors.DateParseFailure, err, "Error parsing date: %s", err.Error())
	}

	return value, nil
}

func (r *run) startDate() error {
	value, err := r.date(startDatePath, "start")
	if err != nil {
		return err
	}

	r.request.StartDate = value
	return nil
}

func (r *run) endDate() error {
	value, err := r.date(endDatePath, "end")
	if err != nil {
		return err
	}

	r.request.EndDate = value
	return nil
}

// daysBetween counts the whole days between a and b regardless of their order.
func daysBetween(a time.Time, b time.Time) int {
	difference := b.Sub(a)
	if difference < 0 {
		difference = -difference
	}

	return int(difference / (24 * time.Hour))
}

func (r *run) stayLength() error {
	days := daysBetween(r.request.StartDate, r.request.EndDate)
	if days < r.rules.MinStayDays {
		return errors.New(
			errors.StayDurationViolation,
			"Stay (difference between start and end dates) must be at least %d days, got %d",
			r.rules.MinStayDays,
			days,
		)
	}

	return nil
}

func (r *run) earliestStart(now time.Time) error {
	leadTime := r.request.StartDate.Sub(now)
	if leadTime < time.Duration(r.rules.EarliestStartDays)*24*time.Hour {
		return errors.New(
			errors.StartDateTooEarly,
			"Start date should be at least %d days from now, got %s",
			r.rules.EarliestStartDays,
			r.request.StartDate.Format(time.DateOnly),
		)
	}

	return nil
}
