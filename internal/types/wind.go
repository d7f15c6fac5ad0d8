package types

import "math"

const MpsToKph = 3.6

type Wind struct {
	SpeedMps          float64 `json:"speed_mps"`
	SpeedKph          float64 `json:"speed_kph"`
	GustsMps          float64 `json:"gusts_mps,omitempty"`
	DirectionDegrees  float64 `json:"direction_degrees"`
	DirectionCardinal string  `json:"direction_cardinal"`
}

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func NewWindFromMps(speedMps, gustsMps, directionDegrees float64) Wind {
	return Wind{
		SpeedMps:          speedMps,
		SpeedKph:          speedMps * MpsToKph,
		GustsMps:          gustsMps,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: CardinalDirection(directionDegrees),
	}
}

// CardinalDirection converts a bearing in degrees to a 16-point compass label
func CardinalDirection(degrees float64) string {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	direction := (degrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	return cardinalDirections[index]
}
