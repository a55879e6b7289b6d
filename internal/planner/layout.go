package planner

import (
	"sort"
	"strconv"
	"strings"

	"github.com/knaito/naraigoto-api/internal/models"
)

// LayoutConfig bounds the schedule grid geometry. Heights are pixels.
type LayoutConfig struct {
	DayStartHour        int
	DayEndHour          int
	PixelsPerHour       int
	MinEventHeight      int
	WhoDetailMinHeight  int
	TimeDetailMinHeight int
}

// DefaultLayoutConfig matches the legacy grid: 07:00-22:00 at 64px per hour.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		DayStartHour:        7,
		DayEndHour:          22,
		PixelsPerHour:       64,
		MinEventHeight:      24,
		WhoDetailMinHeight:  34,
		TimeDetailMinHeight: 56,
	}
}

// EventBox is the computed placement of one lesson inside a day column.
// Lane/Lanes describe the horizontal split among overlapping events; an
// event with no overlapping peers has Lanes == 1 and spans the full width.
type EventBox struct {
	Lesson   *models.Lesson `json:"lesson"`
	StartMin int            `json:"start_min"`
	EndMin   int            `json:"end_min"`
	Top      float64        `json:"top"`
	Height   float64        `json:"height"`
	Lane     int            `json:"lane"`
	Lanes    int            `json:"lanes"`
	ShowWho  bool           `json:"show_who"`
	ShowTime bool           `json:"show_time"`
}

// DayColumn holds the placed events of one visible weekday.
type DayColumn struct {
	Day    string     `json:"day"`
	Events []EventBox `json:"events"`
}

// BuildSchedule computes per-day placements for the lessons selected by a
// pattern. Only lessons whose identifier is selected, whose weekday is
// visible and which carry both a start and an end time participate; everything
// else still counts in the tabular and stats views. Events outside the
// visible window are placed anyway and clip visually; nothing is dropped.
func BuildSchedule(doc *models.Document, selectedIDs []string, visibleDays []string, cfg LayoutConfig) []DayColumn {
	if cfg.PixelsPerHour <= 0 {
		cfg = DefaultLayoutConfig()
	}

	columns := make([]DayColumn, 0, len(visibleDays))
	for _, day := range visibleDays {
		col := DayColumn{Day: day}
		for _, id := range selectedIDs {
			lesson := doc.LessonByID(id)
			if lesson == nil || lesson.Day != day || lesson.Start == "" || lesson.End == "" {
				continue
			}
			startMin, ok := parseClock(lesson.Start)
			if !ok {
				continue
			}
			endMin, ok := parseClock(lesson.End)
			if !ok {
				continue
			}
			col.Events = append(col.Events, EventBox{Lesson: lesson, StartMin: startMin, EndMin: endMin})
		}

		sort.SliceStable(col.Events, func(i, j int) bool {
			return col.Events[i].StartMin < col.Events[j].StartMin
		})

		for i := range col.Events {
			placeEvent(col.Events, i, cfg)
		}
		columns = append(columns, col)
	}
	return columns
}

func placeEvent(events []EventBox, i int, cfg LayoutConfig) {
	ev := &events[i]

	ev.Top = (float64(ev.StartMin)/60 - float64(cfg.DayStartHour)) * float64(cfg.PixelsPerHour)
	height := float64(ev.EndMin-ev.StartMin) / 60 * float64(cfg.PixelsPerHour)
	if height < float64(cfg.MinEventHeight) {
		// Zero and negative durations render as a minimum-height box.
		height = float64(cfg.MinEventHeight)
	}
	ev.Height = height
	ev.ShowWho = height >= float64(cfg.WhoDetailMinHeight)
	ev.ShowTime = height >= float64(cfg.TimeDetailMinHeight)

	// Half-open interval comparison: an event ending exactly when another
	// starts does not overlap it.
	lane := 0
	lanes := 0
	for j := range events {
		if events[j].StartMin < ev.EndMin && events[j].EndMin > ev.StartMin {
			if j < i {
				lane++
			}
			lanes++
		}
	}
	if lanes <= 1 {
		ev.Lane = 0
		ev.Lanes = 1
		return
	}
	ev.Lane = lane
	ev.Lanes = lanes
}

// parseClock converts "HH:MM" (minutes optional) to minutes since midnight.
func parseClock(raw string) (int, bool) {
	parts := strings.SplitN(raw, ":", 2)
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute := 0
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, false
		}
	}
	return hour*60 + minute, true
}
