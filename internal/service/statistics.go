package service

import (
	"math"
	"sort"

	"github.com/limbo/salatchecker/pkg/entity"
)

// ComputeStatistics aggregates records into totals and a per-day breakdown, newest day first.
func ComputeStatistics(records []entity.PrayerRecord) entity.Statistics {
	stats := entity.Statistics{
		TotalDays:      len(records),
		DailyBreakdown: make([]entity.DailyStats, 0, len(records)),
	}
	for _, rec := range records {
		day := entity.DailyStats{Date: rec.Date}
		for _, state := range rec.Prayers.States() {
			switch state {
			case entity.Prayed:
				day.Prayed++
			case entity.Missed:
				day.Missed++
			case entity.NotPrayed:
				day.NotPrayed++
			}
		}
		day.Completion = float64(day.Prayed*100) / entity.PrayersPerDay
		stats.TotalPrayed += day.Prayed
		stats.TotalMissed += day.Missed
		stats.TotalNotPrayed += day.NotPrayed
		stats.DailyBreakdown = append(stats.DailyBreakdown, day)
	}
	if possible := stats.TotalDays * entity.PrayersPerDay; possible > 0 {
		stats.CompletionPercentage = round2(float64(stats.TotalPrayed*100) / float64(possible))
	}
	sort.SliceStable(stats.DailyBreakdown, func(i, j int) bool {
		return stats.DailyBreakdown[i].Date > stats.DailyBreakdown[j].Date
	})
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
