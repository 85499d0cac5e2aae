package router

import (
	"github.com/go-playground/validator/v10"
)

// Settings are the routing parameters fixed at router construction
type Settings struct {
	BusWaitTime int     `json:"bus_wait_time" yaml:"bus_wait_time" validate:"gte=0,lte=1000"` // minutes
	BusVelocity float64 `json:"bus_velocity" yaml:"bus_velocity" validate:"gt=0,lte=1000"`    // km/h
}

var validate = validator.New()

// Validate checks the settings against their allowed ranges
func (s Settings) Validate() error {
	return validate.Struct(s)
}

// metersPerMinute converts the bus velocity from km/h to m/min
func (s Settings) metersPerMinute() float64 {
	return s.BusVelocity * 1000.0 / 60.0
}
