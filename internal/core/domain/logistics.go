package domain

// TravelSegment is one leg of a trip (flight, train, bus).
type TravelSegment struct {
	Type    string `json:"type" yaml:"type"`
	Carrier string `json:"carrier,omitempty" yaml:"carrier,omitempty"`
	Number  string `json:"number,omitempty" yaml:"number,omitempty"`
	DepTime string `json:"dep_time,omitempty" yaml:"dep_time,omitempty"`
	ArrTime string `json:"arr_time,omitempty" yaml:"arr_time,omitempty"`
}

// TeamTrip is a synchro team trip to a competition or camp.
type TeamTrip struct {
	ID                   int64           `json:"id,omitempty" yaml:"id,omitempty"`
	Title                string          `json:"title" yaml:"title" validate:"required,max=255"`
	StartDate            string          `json:"start_date" yaml:"start_date" validate:"required,isodate"`
	EndDate              string          `json:"end_date" yaml:"end_date" validate:"required,isodate"`
	Competition          *int64          `json:"competition,omitempty" yaml:"competition,omitempty"`
	TravelSegments       []TravelSegment `json:"travel_segments" yaml:"travel_segments,omitempty"`
	HotelInfo            string          `json:"hotel_info,omitempty" yaml:"hotel_info,omitempty"`
	GroundTransportNotes string          `json:"ground_transport_notes,omitempty" yaml:"ground_transport_notes,omitempty"`
	IsActive             bool            `json:"is_active" yaml:"is_active"`
}

// Itinerary categories.
const (
	ItineraryTravel      = "TRAVEL"
	ItineraryIce         = "ICE"
	ItineraryOffIce      = "OFF_ICE"
	ItineraryMeal        = "MEAL"
	ItineraryMeeting     = "MEETING"
	ItineraryCompetition = "COMPETITION"
	ItineraryOther       = "OTHER"
)

type ItineraryItem struct {
	ID        int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Trip      int64  `json:"trip,omitempty" yaml:"trip,omitempty"`
	StartTime string `json:"start_time" yaml:"start_time" validate:"required"`
	EndTime   string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Activity  string `json:"activity" yaml:"activity" validate:"required,max=255"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty" validate:"omitempty,max=255"`
	Notes     string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Category  string `json:"category" yaml:"category" validate:"required,oneof=TRAVEL ICE OFF_ICE MEAL MEETING COMPETITION OTHER"`
}

// Occupant is a roster skater placed in a room.
type Occupant struct {
	ID       int64  `json:"id" yaml:"id"`
	FullName string `json:"full_name" yaml:"full_name"`
}

// HousingAssignment is one hotel room of a trip rooming list.
type HousingAssignment struct {
	ID             int64      `json:"id,omitempty" yaml:"id,omitempty"`
	Trip           int64      `json:"trip,omitempty" yaml:"trip,omitempty"`
	RoomNumber     string     `json:"room_number" yaml:"room_number" validate:"required,max=50"`
	Occupants      []Occupant `json:"occupants,omitempty" yaml:"occupants,omitempty" validate:"-"`
	OccupantIDs    []int64    `json:"occupant_ids" yaml:"-"`
	GuestOccupants string     `json:"guest_occupants,omitempty" yaml:"guest_occupants,omitempty"`
	Notes          string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}
