package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var planMessages = map[string]string{
	"origin:min":      "Origin is required",
	"destination:min": "Destination is required",
	"budget:gt":       "Budget must be positive",
}

var planEnhancedMessages = map[string]string{
	"origin:min":           "Origin must be at least 2 characters",
	"origin:max":           "Origin is too long",
	"destination:min":      "Destination must be at least 2 characters",
	"destination:max":      "Destination is too long",
	"budget:gt":            "Budget must be a positive number",
	"budget:max":           "Budget cannot exceed $10,000",
	"destination:distinct": "Origin and destination must be different",
}

var orderedDateRangeMessages = map[string]string{
	"dateRange.start:required": "Start date is required",
	"dateRange.end:required":   "End date is required",
}

// create-trip keeps the default messages
var createTripMessages = map[string]string{}

var createTripEnhancedMessages = merge(planEnhancedMessages, orderedDateRangeMessages, map[string]string{
	"dateRange.end:dateorder": "End date must be after or equal to start date",
})

var signupMessages = map[string]string{
	"email:email":  "Invalid email address",
	"password:min": "Password must be at least 8 characters",
	"name:min":     "Name must be at least 2 characters",
}

var signinMessages = map[string]string{
	"email:email":  "Invalid email address",
	"password:min": "Password is required",
}

var settingsMessages = map[string]string{
	"theme:oneof": "Theme must be light, dark, or system",
}

var routeOptionMessages = map[string]string{
	"mode:oneof":       "Mode must be train, bus, flight, car, ferry, or combination",
	"cost:gte":         "Cost must be non-negative",
	"cost:finite":      "Cost must be a finite number",
	"durationMins:gte": "Duration must be a non-negative integer",
	"co2Kg:gte":        "CO2 must be non-negative",
	"co2Kg:finite":     "CO2 must be a finite number",
	"ecoScore:min":     "Eco score must be between 0 and 100",
	"ecoScore:max":     "Eco score must be between 0 and 100",
}

var tripMessages = merge(prefixed("routeOptions.*.", routeOptionMessages), map[string]string{
	"budget:gt": "Budget must be positive",
})

func merge(tables ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}

// prefixed re-keys a message table for a schema nested under prefix
func prefixed(prefix string, table map[string]string) map[string]string {
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[prefix+k] = v
	}
	return out
}

// defaultMessage describes a failed constraint when no schema message applies
func defaultMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "oneof":
		return fmt.Sprintf("Invalid enum value. Expected one of: %s", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "finite":
		return "Number must be finite"
	case tagDistinct:
		return "Values must be different"
	case tagDateOrder:
		return "Dates are out of order"
	}
	return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
}
