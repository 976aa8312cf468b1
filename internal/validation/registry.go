package validation

import (
	"sort"

	"github.com/Rrens/ecotrip/internal/domain"
)

// Validator is the type-erased view of a Schema
type Validator interface {
	Name() string
	Validate(payload []byte) (any, error)
}

var (
	Plan               = newSchema[domain.PlanInput]("plan", planMessages)
	PlanEnhanced       = newSchema[domain.PlanInputEnhanced]("plan-enhanced", planEnhancedMessages)
	CreateTrip         = newSchema[domain.CreateTripInput]("create-trip", createTripMessages)
	CreateTripEnhanced = newSchema[domain.CreateTripInputEnhanced]("create-trip-enhanced", createTripEnhancedMessages)
	Signup             = newSchema[domain.SignupInput]("signup", signupMessages)
	Signin             = newSchema[domain.SigninInput]("signin", signinMessages)
	Settings           = newSchema[domain.SettingsInput]("settings", settingsMessages)
	RouteOption        = newSchema[domain.RouteOption]("route-option", routeOptionMessages)
	Trip               = newSchema[domain.Trip]("trip", tripMessages)
)

var registry = map[string]Validator{}

func init() {
	for _, s := range []Validator{
		Plan, PlanEnhanced, CreateTrip, CreateTripEnhanced,
		Signup, Signin, Settings, RouteOption, Trip,
	} {
		registry[s.Name()] = s
	}
}

// Lookup returns the schema registered under name
func Lookup(name string) (Validator, bool) {
	v, ok := registry[name]
	return v, ok
}

// Names lists the registered schemas in order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
