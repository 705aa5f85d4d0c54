package models

// Store keys for RSVP records. Same record-plus-index layout as claims;
// rooms:bookings holds one string-set attribute per room id with the
// booked dates.
const (
	RSVPKeyPrefix   = "rsvp:"
	RSVPIndexKey    = "rsvp-list"
	RoomBookingsKey = "rooms:bookings"
)

const (
	AttendingYes = "yes"
	AttendingNo  = "no"
)

// RSVPEntry is one guest's wedding attendance response. Entries are
// append-only; nothing updates or deletes them after submission.
// RoomBooking, if set, references a room id from the catalog, but
// unknown ids are recorded as-is.
type RSVPEntry struct {
	ID            string `json:"id" dynamodbav:"id"`
	Name          string `json:"name" dynamodbav:"name" validate:"required"`
	Phone         string `json:"phone,omitempty" dynamodbav:"phone" validate:"required_without=Email"`
	Email         string `json:"email,omitempty" dynamodbav:"email" validate:"required_without=Phone,omitempty,email"`
	Attending     string `json:"attending" dynamodbav:"attending" validate:"required,oneof=yes no"`
	GuestCount    int    `json:"guestCount" dynamodbav:"guestCount" validate:"required_if=Attending yes,omitempty,min=1"`
	GuestNames    string `json:"guestNames" dynamodbav:"guestNames"`
	ArrivalDate   string `json:"arrivalDate" dynamodbav:"arrivalDate"`     // YYYY-MM-DD
	DepartureDate string `json:"departureDate" dynamodbav:"departureDate"` // YYYY-MM-DD
	RoomBooking   string `json:"roomBooking,omitempty" dynamodbav:"roomBooking"`
	Dietary       string `json:"dietary" dynamodbav:"dietary"`
	Message       string `json:"message" dynamodbav:"message"`
	SubmittedAt   string `json:"submittedAt" dynamodbav:"submittedAt"` // RFC3339, set server-side
}

// RSVPStats aggregates all responses. TotalGuests counts guests of
// attending entries only.
type RSVPStats struct {
	Total        int `json:"total"`
	Attending    int `json:"attending"`
	NotAttending int `json:"notAttending"`
	TotalGuests  int `json:"totalGuests"`
}

// RSVPKey returns the store key for an RSVP record
func RSVPKey(id string) string {
	return RSVPKeyPrefix + id
}
