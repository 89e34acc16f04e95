package dtos

// Raw response shapes of the AeroDataBox airport and aircraft-image
// endpoints (RapidAPI).

type AeroDataBoxAirport struct {
	ICAO        string             `json:"icao"`
	IATA        string             `json:"iata"`
	ShortName   string             `json:"shortName"`
	FullName    string             `json:"fullName"`
	CountryCode string             `json:"countryCode"`
	Location    *AeroDataBoxLatLon `json:"location"`
	TimeZone    string             `json:"timeZone"`
}

type AeroDataBoxLatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type AeroDataBoxImage struct {
	URL              string   `json:"url"`
	WebURL           string   `json:"webUrl"`
	Author           string   `json:"author"`
	Title            string   `json:"title"`
	License          string   `json:"license"`
	HTMLAttributions []string `json:"htmlAttributions"`
}
