package models

// LandmarkTypeCustom is the type assigned to caller-supplied landmarks
// that do not carry one.
const LandmarkTypeCustom = "custom"

// Landmark is one destination entry within a trip's ordered stop list
type Landmark struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Type      string  `json:"type"`
}

// LandmarkFromMap normalizes a loosely shaped landmark payload into a Landmark.
// Clients send either {name, latitude, longitude, type} or the shorter
// {name, lat, long} form; the type defaults to "custom" when absent.
func LandmarkFromMap(m map[string]interface{}) Landmark {
	l := Landmark{Type: LandmarkTypeCustom}

	if v, ok := m["name"].(string); ok {
		l.Name = v
	}
	if v, ok := m["type"].(string); ok && v != "" {
		l.Type = v
	}
	l.Latitude = floatField(m, "latitude", "lat")
	l.Longitude = floatField(m, "longitude", "long", "lng")

	return l
}

// floatField returns the first of the named keys that holds a numeric value
func floatField(m map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 0
}
