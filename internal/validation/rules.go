package validation

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Rrens/ecotrip/internal/domain"
)

// Tags reported by struct-level rules
const (
	tagDistinct  = "distinct"
	tagDateOrder = "dateorder"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so paths match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(distinctEndpoints, domain.PlanInputEnhanced{}, domain.CreateTripInputEnhanced{})
	v.RegisterStructValidation(orderedDates, domain.OrderedDateRange{})

	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}
	return true
}

// distinctEndpoints rejects trips that start and end in the same place
func distinctEndpoints(sl validator.StructLevel) {
	var origin, destination string
	switch v := sl.Current().Interface().(type) {
	case domain.PlanInputEnhanced:
		origin, destination = v.Origin, v.Destination
	case domain.CreateTripInputEnhanced:
		origin, destination = v.Origin, v.Destination
	default:
		return
	}

	if normalizePlace(origin) == normalizePlace(destination) {
		sl.ReportError(destination, "destination", "Destination", tagDistinct, "")
	}
}

// orderedDates rejects a range whose end precedes its start.
// Unparseable dates cannot be ordered and fail as well.
func orderedDates(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(domain.OrderedDateRange)
	if !ok {
		return
	}

	start, errStart := domain.ParseDate(r.Start)
	end, errEnd := domain.ParseDate(r.End)
	if errStart != nil || errEnd != nil || end.Before(start) {
		sl.ReportError(r.End, "end", "End", tagDateOrder, "")
	}
}

func normalizePlace(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
