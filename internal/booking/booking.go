package booking

import "time"

type SearchType string

const (
	SearchTypeSingle   SearchType = "Single"
	SearchTypeMultiple SearchType = "Multiple"
)

// SearchTypes lists the accepted search types, the first one being the default.
var SearchTypes = []string{string(SearchTypeSingle), string(SearchTypeMultiple)}

// Credentials are the partner authentication attributes declared in the request.
type Credentials struct {
	username  string
	password  string
	companyID int
}

func NewCredentials(username string, password string, companyID int) Credentials {
	return Credentials{
		username:  username,
		password:  password,
		companyID: companyID,
	}
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}

func (c Credentials) CompanyID() int {
	return c.companyID
}

type Destination struct {
	Code string
}

// Passenger ages keep their fraction, a guest aged 5.5 is older than 5.
type Passenger struct {
	Age float64
}

type Room struct {
	Passengers []Passenger
}

// Composition splits the room guests into adults and children.
func (r Room) Composition(isChild func(age float64) bool) (adults int, children int) {
	for _, passenger := range r.Passengers {
		if isChild(passenger.Age) {
			children++
		} else {
			adults++
		}
	}

	return adults, children
}

// ValidatedRequest is a booking request that passed every validation rule.
type ValidatedRequest struct {
	LanguageCode string
	OptionsQuota int
	Credentials  Credentials
	SearchType   SearchType
	Destinations []Destination
	StartDate    time.Time
	EndDate      time.Time
	Currency     string
	Nationality  string
	Market       string
	Rooms        []Room
	Markup       float64
}
