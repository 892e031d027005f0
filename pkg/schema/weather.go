package schema

import (
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Coordinates is a position in decimal degrees, as returned by geocoding
// and accepted by the weather tools
type Coordinates struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude of the location"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

// String returns the coordinates as "latitude,longitude"
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
