package models

import "time"

// Quote is the price breakdown shown before a hire is confirmed.
type Quote struct {
	BaseMonthlyRate int64     `json:"baseMonthlyRate"`
	DurationMonths  int       `json:"durationMonths"`
	DailyHours      HoursTier `json:"dailyHours"`
	MultiplierPct   int64     `json:"multiplierPct"` // 100 = x1.00
	Total           int64     `json:"total"`
	Advance         int64     `json:"advance"`
	Remaining       int64     `json:"remaining"`
	StartDate       time.Time `json:"startDate"`
}

// StartDateString formats the service start date the way bookings store it.
func (q Quote) StartDateString() string {
	return q.StartDate.Format("2006-01-02")
}
