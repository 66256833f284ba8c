package geocoder

// Coordinates координаты точки
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// nominatimResult одна запись ответа Nominatim
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}
