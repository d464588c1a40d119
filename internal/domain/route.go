package domain

import "fmt"

// RouteResult is the outcome of one route computation: the path geometry
// returned by the routing backend plus the metrics shown in the trip panel.
// It is owned by the trip that requested it and invalidated on clear.
type RouteResult struct {
	Coordinates      []LatLng `json:"coordinates"`
	DistanceMeters   float64  `json:"distance_meters"`
	PredictedTimeMin float64  `json:"predicted_time_min"`
	LatencyMs        int64    `json:"latency_ms"`
	Stops            int      `json:"stops"`
}

// DistanceDisplay formats the total distance as kilometers with two
// decimals, e.g. "3.50 km".
func (r *RouteResult) DistanceDisplay() string {
	return fmt.Sprintf("%.2f km", r.DistanceMeters/1000)
}

// TimeDisplay formats the predicted time rounded to whole minutes,
// e.g. "8 min".
func (r *RouteResult) TimeDisplay() string {
	return fmt.Sprintf("%.0f min", r.PredictedTimeMin)
}

func (r *RouteResult) Clone() *RouteResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Coordinates = append([]LatLng(nil), r.Coordinates...)
	return &out
}
