package openweathermap

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type WindReadings struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust"`
}

type CurrentAPIResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather    []Condition  `json:"weather"`
	Main       MainReadings `json:"main"`
	Wind       WindReadings `json:"wind"`
	Visibility int          `json:"visibility"`
	Dt         int64        `json:"dt"`
	Timezone   int          `json:"timezone"`
	Name       string       `json:"name"`
	Cod        int          `json:"cod"`
}

// PrimaryCondition returns the first reported condition, if any
func (r *CurrentAPIResponse) PrimaryCondition() Condition {
	if len(r.Weather) == 0 {
		return Condition{}
	}
	return r.Weather[0]
}

type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
	Wind    WindReadings `json:"wind"`
	Pop     float64      `json:"pop"`
	DtTxt   string       `json:"dt_txt"`
}

func (e *ForecastEntry) PrimaryCondition() Condition {
	if len(e.Weather) == 0 {
		return Condition{}
	}
	return e.Weather[0]
}

type ForecastAPIResponse struct {
	Cod  string          `json:"cod"`
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
		Coord    struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	} `json:"city"`
}
