package dto

// TravelTimeRequest - start and end coordinates.
// Bound from a JSON body on the intercity variant and from the query string on the intracity one.
type TravelTimeRequest struct {
	StartLat *float64 `json:"start_lat" query:"start_lat" validate:"required"`
	StartLon *float64 `json:"start_lon" query:"start_lon" validate:"required"`
	EndLat   *float64 `json:"end_lat" query:"end_lat" validate:"required"`
	EndLon   *float64 `json:"end_lon" query:"end_lon" validate:"required"`
	Lang     *int     `json:"lang,omitempty" query:"lang"`
}

// TravelTimeResponse - total travel time in minutes
type TravelTimeResponse struct {
	TotalTime int `json:"total_time"`
}

// HealthResponse - liveness check payload
type HealthResponse struct {
	Status string `json:"status"`
}
