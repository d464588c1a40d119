package planner

import "time"

// TimePredictor estimates delivery time from distance and base travel time.
// It is the linear model the dashboard trained offline, reduced to fixed
// coefficients, including the market-day uplift on Thursdays.
type TimePredictor struct {
	DistCoefPerKm  float64
	BaseTimeCoef   float64
	ThursdayUplift float64
}

// PredictMinutes applies the linear model at the given time.
func (p TimePredictor) PredictMinutes(distanceMeters, baseTimeSec float64, at time.Time) float64 {
	minutes := p.DistCoefPerKm*(distanceMeters/1000) + p.BaseTimeCoef*(baseTimeSec/60)
	if at.Weekday() == time.Thursday {
		minutes += p.ThursdayUplift
	}
	return minutes
}
