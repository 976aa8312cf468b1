package domain

// RouteMode is a transport mode for a route option
type RouteMode string

const (
	ModeTrain    RouteMode = "train"
	ModeBus      RouteMode = "bus"
	ModeFlight   RouteMode = "flight"
	ModeCar      RouteMode = "car"
	ModeFerry    RouteMode = "ferry"
	ModeTrainBus RouteMode = "train+bus"
	ModeBusTrain RouteMode = "bus+train"
)

// RouteOption is a single way of travelling between a trip's origin and destination.
// Unknown JSON keys are rejected when it is validated.
type RouteOption struct {
	ID           string    `json:"id,omitempty"`
	Mode         RouteMode `json:"mode" validate:"oneof=train bus flight car ferry train+bus bus+train"`
	Cost         float64   `json:"cost" validate:"finite,gte=0"`
	DurationMins int       `json:"durationMins" validate:"gte=0"`
	CO2Kg        float64   `json:"co2Kg" validate:"finite,gte=0"`
	EcoScore     int       `json:"ecoScore" validate:"min=0,max=100"`
	Notes        string    `json:"notes,omitempty"`
}

// Strict marks RouteOption as closed to undeclared fields
func (RouteOption) Strict() bool { return true }

// Trip is a saved trip with its route options
type Trip struct {
	ID           string        `json:"id"`
	Origin       string        `json:"origin"`
	Destination  string        `json:"destination"`
	Budget       int           `json:"budget" validate:"gt=0"`
	DateStart    DateValue     `json:"dateStart"`
	DateEnd      DateValue     `json:"dateEnd"`
	CreatedAt    *DateValue    `json:"createdAt,omitempty"`
	UpdatedAt    *DateValue    `json:"updatedAt,omitempty"`
	RouteOptions []RouteOption `json:"routeOptions" validate:"omitempty,dive"`
}

// ApplyDefaults fills fields that may be absent from input
func (t *Trip) ApplyDefaults() {
	if t.RouteOptions == nil {
		t.RouteOptions = []RouteOption{}
	}
}

// PlanInput is the payload for planning a route
type PlanInput struct {
	Origin      string `json:"origin" validate:"min=2"`
	Destination string `json:"destination" validate:"min=2"`
	Budget      int    `json:"budget" validate:"gt=0"`
}

// PlanInputEnhanced adds length caps, a budget ceiling and origin != destination
type PlanInputEnhanced struct {
	Origin      string `json:"origin" validate:"min=2,max=100"`
	Destination string `json:"destination" validate:"min=2,max=100"`
	Budget      int    `json:"budget" validate:"gt=0,max=10000"`
}

// DateRange is a pair of textual trip dates. Either may be empty.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OrderedDateRange is a DateRange whose end may not precede its start
type OrderedDateRange struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// CreateTripInput is the payload for creating a trip
type CreateTripInput struct {
	Origin      string    `json:"origin" validate:"min=2"`
	Destination string    `json:"destination" validate:"min=2"`
	Budget      int       `json:"budget" validate:"gt=0"`
	DateRange   DateRange `json:"dateRange"`
}

// CreateTripInputEnhanced is CreateTripInput with the enhanced plan rules and ordered dates
type CreateTripInputEnhanced struct {
	Origin      string           `json:"origin" validate:"min=2,max=100"`
	Destination string           `json:"destination" validate:"min=2,max=100"`
	Budget      int              `json:"budget" validate:"gt=0,max=10000"`
	DateRange   OrderedDateRange `json:"dateRange"`
}
