package dtos

// Raw response shapes of the AviationStack flights endpoint. Times arrive as
// RFC3339-ish strings and are parsed during normalization.

type AviationStackResponse struct {
	Pagination AviationStackPagination `json:"pagination"`
	Data       []AviationStackFlight   `json:"data"`
	Error      *AviationStackError     `json:"error,omitempty"`
}

type AviationStackPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

// AviationStackError is the provider's error envelope. Message is the
// human-readable text surfaced to the user on primary lookup failures.
type AviationStackError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AviationStackFlight struct {
	FlightDate   string                  `json:"flight_date"`
	FlightStatus string                  `json:"flight_status"`
	Departure    AviationStackAirport    `json:"departure"`
	Arrival      AviationStackAirport    `json:"arrival"`
	Airline      AviationStackAirline    `json:"airline"`
	Flight       AviationStackFlightIdent `json:"flight"`
	Aircraft     *AviationStackAircraft  `json:"aircraft"`
	Live         *AviationStackLive      `json:"live"`
}

type AviationStackAirport struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Delay     *int   `json:"delay"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
	Actual    string `json:"actual"`
}

type AviationStackAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

type AviationStackFlightIdent struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
}

type AviationStackAircraft struct {
	Registration string `json:"registration"`
	IATA         string `json:"iata"`
	ICAO         string `json:"icao"`
	ICAO24       string `json:"icao24"`
}

type AviationStackLive struct {
	Updated         string  `json:"updated"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	Direction       float64 `json:"direction"`
	SpeedHorizontal float64 `json:"speed_horizontal"`
	SpeedVertical   float64 `json:"speed_vertical"`
	IsGround        bool    `json:"is_ground"`
}
