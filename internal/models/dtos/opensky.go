package dtos

import (
	"encoding/json"
	"fmt"
)

// OpenSkyStatesResponse is the raw payload of /states/all. Each state vector
// is a positional array; OpenSkyState maps the indexes the tracker consumes.
type OpenSkyStatesResponse struct {
	Time   int64          `json:"time"`
	States []OpenSkyState `json:"states"`
}

// OpenSkyState is one decoded state vector. Field order in the upstream
// array: 0 icao24, 1 callsign, 2 origin_country, 3 time_position,
// 4 last_contact, 5 longitude, 6 latitude, 7 baro_altitude, 8 on_ground,
// 9 velocity, 10 true_track, 11 vertical_rate, 12 sensors, 13 geo_altitude.
type OpenSkyState struct {
	ICAO24       string
	Callsign     string
	LastContact  int64
	Longitude    *float64
	Latitude     *float64
	BaroAltitude *float64
	OnGround     bool
	Velocity     *float64
	TrueTrack    *float64
	VerticalRate *float64
	GeoAltitude  *float64
}

func (s *OpenSkyState) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 14 {
		return fmt.Errorf("state vector too short: %d fields", len(raw))
	}

	s.ICAO24, _ = raw[0].(string)
	s.Callsign, _ = raw[1].(string)
	if v, ok := raw[4].(float64); ok {
		s.LastContact = int64(v)
	}
	s.Longitude = optFloat(raw[5])
	s.Latitude = optFloat(raw[6])
	s.BaroAltitude = optFloat(raw[7])
	s.OnGround, _ = raw[8].(bool)
	s.Velocity = optFloat(raw[9])
	s.TrueTrack = optFloat(raw[10])
	s.VerticalRate = optFloat(raw[11])
	s.GeoAltitude = optFloat(raw[13])
	return nil
}

func optFloat(v any) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}
