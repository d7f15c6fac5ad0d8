package types

import "math"

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	var celsius = (fahrenheit - 32) * 5 / 9
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}

// Rounded returns the temperature rounded to whole degrees, as shown on the panel
func (t Temperature) Rounded() Temperature {
	return Temperature{
		Celsius:    math.Round(t.Celsius),
		Fahrenheit: math.Round(t.Fahrenheit),
	}
}
