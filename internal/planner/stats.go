package planner

import (
	"strconv"

	"github.com/knaito/naraigoto-api/internal/models"
)

// OverloadThreshold is the number of selected lessons on a single weekday at
// which the day is flagged as overloaded.
const OverloadThreshold = 3

// PatternStats aggregates one pattern's selection for the comparison view.
// Per-child counts include both-children lessons in each child's tally, so
// SisterCount+BrotherCount can exceed Total.
type PatternStats struct {
	Total          int            `json:"total"`
	FeeTotal       int            `json:"fee_total"`
	DayCounts      map[string]int `json:"day_counts"`
	SisterCount    int            `json:"sister_count"`
	BrotherCount   int            `json:"brother_count"`
	OverloadedDays []string       `json:"overloaded_days"`
}

// BuildStats computes the aggregate view of a pattern's selected lessons.
// Identifiers that no longer resolve are skipped; fees that fail to parse as
// integers count as zero rather than failing the whole aggregate.
func BuildStats(doc *models.Document, selectedIDs []string) PatternStats {
	stats := PatternStats{DayCounts: map[string]int{}}

	for _, id := range selectedIDs {
		lesson := doc.LessonByID(id)
		if lesson == nil {
			continue
		}
		stats.Total++
		if fee, err := strconv.Atoi(lesson.Fee); err == nil {
			stats.FeeTotal += fee
		}
		if models.IsWeekday(lesson.Day) {
			stats.DayCounts[lesson.Day]++
		}
		switch ResolveWho(doc.Family, lesson.Who) {
		case WhoSister:
			stats.SisterCount++
		case WhoBrother:
			stats.BrotherCount++
		case WhoBoth:
			stats.SisterCount++
			stats.BrotherCount++
		}
	}

	for _, day := range models.Weekdays {
		if stats.DayCounts[day] >= OverloadThreshold {
			stats.OverloadedDays = append(stats.OverloadedDays, day)
		}
	}
	return stats
}
