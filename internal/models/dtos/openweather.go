package dtos

// Raw response shapes of the OpenWeatherMap current-conditions endpoint
// (metric units).

type OpenWeatherResponse struct {
	Weather    []OpenWeatherCondition `json:"weather"`
	Main       OpenWeatherMain        `json:"main"`
	Wind       OpenWeatherWind        `json:"wind"`
	Visibility int                    `json:"visibility"`
	Name       string                 `json:"name"`
	Cod        int                    `json:"cod"`
}

type OpenWeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type OpenWeatherMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type OpenWeatherWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust"`
}
