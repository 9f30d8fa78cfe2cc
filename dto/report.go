package dto

import (
	"hotelops/models"
	"hotelops/services/occupancy"
)

type RangeReportResponse struct {
	From             string                    `json:"from"`
	To               string                    `json:"to"`
	Days             []models.NightAuditReport `json:"days"`
	TotalRevenue     float64                   `json:"totalRevenue"`
	AverageOccupancy float64                   `json:"averageOccupancy"`
}

type NightAuditRequest struct {
	Date string `json:"date"`
}

type NightAuditResult struct {
	Date           string                `json:"date"`
	Report         occupancy.DailyReport `json:"report"`
	NoShows        []uint                `json:"noShows"`
	StayOvers      []uint                `json:"stayOvers"`
	Departures     []uint                `json:"departures"`
	DoubleBookings []string              `json:"doubleBookings"`
	RunID          string                `json:"runId"`
}
