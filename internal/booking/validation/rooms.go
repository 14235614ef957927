package validation

import (
	"strings"

	"bitbucket.org/crgw/booking-quotes/internal/booking"
	"bitbucket.org/crgw/booking-quotes/internal/booking/document"
	"bitbucket.org/crgw/booking-quotes/internal/booking/errors"
	"bitbucket.org/crgw/booking-quotes/internal/tools/converting"
)

func (r *run) rooms() error {
	maxGuests, err := r.integer(allowedGuestsPath, numericRule{
		property: "allowed guests per room",
		min:      converting.PointerToValue(1),
	})
	if err != nil {
		return err
	}

	maxChildren, err := r.integer(allowedChildrenPath, numericRule{
		property: "allowed children per room",
		min:      converting.PointerToValue(0),
	})
	if err != nil {
		return err
	}

	nodes := r.root.Query(roomsPath)
	if len(nodes) == 0 {
		return errors.New(errors.RoomCompositionViolation, "Missing rooms")
	}

	rooms := make([]booking.Room, len(nodes))
	for i, node := range nodes {
		room, err := r.room(node, maxGuests, maxChildren)
		if err != nil {
			return err
		}

		rooms[i] = room
	}

	r.request.Rooms = rooms
	return nil
}

func (r *run) room(node document.Node, maxGuests int, maxChildren int) (booking.Room, error) {
	guests := node.Query(passengersPath)
	if len(guests) == 0 {
		return booking.Room{}, errors.New(errors.RoomCompositionViolation, "Missing guests per room")
	}

	if len(guests) > maxGuests {
		return booking.Room{}, errors.New(errors.RoomCompositionViolation, "Number of passengers per room exceeded")
	}

	room := booking.Room{Passengers: make([]booking.Passenger, len(guests))}
	for i, guest := range guests {
		passenger, err := parsePassenger(guest)
		if err != nil {
			return booking.Room{}, err
		}

		room.Passengers[i] = passenger
	}

	adults, children := room.Composition(r.rules.IsChild)

	if children > maxChildren {
		return booking.Room{}, errors.New(errors.RoomCompositionViolation, "Number of children per room exceeded")
	}

	if children > 0 && adults == 0 {
		return booking.Room{}, errors.New(errors.RoomCompositionViolation, "Children not accompanied by adults not allowed")
	}

	return room, nil
}

func parsePassenger(node document.Node) (booking.Passenger, error) {
	value, _ := node.Attr("age")
	value = strings.TrimSpace(value)

	age, ok := converting.ParseNumeric(value)
	if !ok {
		return booking.Passenger{}, errors.New(errors.NonNumericField, "'passenger age' must be a number")
	}

	if age < 0 {
		return booking.Passenger{}, errors.New(errors.OutOfRangeNumeric, "Minimum 'passenger age' value is 0, got %s", value)
	}

	_, ok = converting.TruncateInt(age)
	if !ok {
		return booking.Passenger{}, errors.New(errors.OutOfRangeNumeric, "'passenger age' value is out of range")
	}

	return booking.Passenger{Age: age}, nil
}
