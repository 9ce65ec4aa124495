package mining

import (
	"github.com/skybi/tinsig/internal/dataset"
	"math"
)

// Statistics summarizes the mining datasets for dashboard use
type Statistics struct {
	IllegalMiningCount       int     `json:"illegal_mining_count"`
	TotalWorkers             int     `json:"total_workers"`
	EstimatedDailyProduction float64 `json:"estimated_daily_production"`
	ProductionRecordCount    int     `json:"production_record_count"`
	ProductionTotal          float64 `json:"production_total"`
	AverageGrade             float64 `json:"average_grade"`
	PermitCount              int     `json:"iup_count"`
	ActivePermitCount        int     `json:"active_iup_count"`
	TotalPermitArea          float64 `json:"total_iup_area"`
}

// Summarize computes the statistics over the given records.
// Records of unknown types are ignored, so the records of all datasets may be passed at once.
func Summarize(records ...[]dataset.Record) *Statistics {
	stats := &Statistics{}
	gradeSum := 0.0
	for _, set := range records {
		for _, record := range set {
			switch typed := record.(type) {
			case *IllegalSite:
				stats.IllegalMiningCount++
				stats.TotalWorkers += typed.Workers
				stats.EstimatedDailyProduction += typed.DailyProduction
			case *Production:
				stats.ProductionRecordCount++
				stats.ProductionTotal += typed.Tons
				gradeSum += typed.Grade
			case *Permit:
				stats.PermitCount++
				stats.TotalPermitArea += typed.Area
				if typed.IsActive() {
					stats.ActivePermitCount++
				}
			}
		}
	}
	if stats.ProductionRecordCount > 0 {
		stats.AverageGrade = gradeSum / float64(stats.ProductionRecordCount)
	}

	stats.EstimatedDailyProduction = round2(stats.EstimatedDailyProduction)
	stats.ProductionTotal = round2(stats.ProductionTotal)
	stats.AverageGrade = round2(stats.AverageGrade)
	stats.TotalPermitArea = round2(stats.TotalPermitArea)
	return stats
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
