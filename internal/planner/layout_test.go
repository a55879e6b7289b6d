package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knaito/naraigoto-api/internal/models"
)

func scheduleDoc() *models.Document {
	doc := docWithLessons(
		&models.Lesson{ID: "s1", Name: "スイミング", Who: "お姉ちゃん", Day: "土", Start: "10:00", End: "11:00"},
		&models.Lesson{ID: "s2", Name: "体操", Who: "弟くん", Day: "土", Start: "10:30", End: "11:30"},
		&models.Lesson{ID: "s3", Name: "ピアノ", Who: "お姉ちゃん", Day: "土", Start: "11:30", End: "12:00"},
		&models.Lesson{ID: "w1", Name: "幼児教室", Who: "お姉ちゃん", Day: "水", Start: "15:00", End: "15:50"},
		&models.Lesson{ID: "n1", Name: "英会話", Who: "弟くん", Day: "金"},
	)
	return doc
}

func TestBuildScheduleOverlapHalvesWidth(t *testing.T) {
	doc := scheduleDoc()
	cols := BuildSchedule(doc, []string{"s1", "s2", "s3"}, []string{"土"}, DefaultLayoutConfig())

	require.Len(t, cols, 1)
	require.Len(t, cols[0].Events, 3)

	first, second, third := cols[0].Events[0], cols[0].Events[1], cols[0].Events[2]
	assert.Equal(t, "s1", first.Lesson.ID)
	assert.Equal(t, 0, first.Lane)
	assert.Equal(t, 2, first.Lanes)
	assert.Equal(t, 1, second.Lane)
	assert.Equal(t, 2, second.Lanes)

	// s3 starts exactly when s2 ends; half-open intervals do not overlap.
	assert.Equal(t, 0, third.Lane)
	assert.Equal(t, 1, third.Lanes)
}

func TestBuildScheduleGeometry(t *testing.T) {
	doc := scheduleDoc()
	cols := BuildSchedule(doc, []string{"w1"}, []string{"水"}, DefaultLayoutConfig())

	require.Len(t, cols, 1)
	require.Len(t, cols[0].Events, 1)
	ev := cols[0].Events[0]

	// 15:00 is eight hours past the 07:00 grid start.
	assert.InDelta(t, 8*64, ev.Top, 0.001)
	assert.InDelta(t, 50.0/60*64, ev.Height, 0.001)
	assert.True(t, ev.ShowWho)
	assert.False(t, ev.ShowTime, "53px box is below the time-detail threshold")
}

func TestBuildScheduleSkipsUntimedLessons(t *testing.T) {
	doc := scheduleDoc()
	cols := BuildSchedule(doc, []string{"n1"}, []string{"金"}, DefaultLayoutConfig())

	require.Len(t, cols, 1)
	assert.Empty(t, cols[0].Events)
}

func TestBuildScheduleMinimumHeight(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "q1", Name: "ピアノ", Who: "お姉ちゃん", Day: "月", Start: "10:00", End: "10:05"},
		&models.Lesson{ID: "q2", Name: "体操", Who: "弟くん", Day: "月", Start: "12:00", End: "11:00"},
	)
	cols := BuildSchedule(doc, []string{"q1", "q2"}, []string{"月"}, DefaultLayoutConfig())

	require.Len(t, cols[0].Events, 2)
	for _, ev := range cols[0].Events {
		assert.InDelta(t, 24, ev.Height, 0.001)
		assert.False(t, ev.ShowWho)
		assert.False(t, ev.ShowTime)
	}
}

func TestBuildScheduleStableOrderForTies(t *testing.T) {
	doc := docWithLessons(
		&models.Lesson{ID: "t1", Name: "体操", Who: "お姉ちゃん", Day: "日", Start: "09:00", End: "10:00"},
		&models.Lesson{ID: "t2", Name: "体操", Who: "弟くん", Day: "日", Start: "09:00", End: "10:00"},
	)
	cols := BuildSchedule(doc, []string{"t1", "t2"}, []string{"日"}, DefaultLayoutConfig())

	require.Len(t, cols[0].Events, 2)
	assert.Equal(t, "t1", cols[0].Events[0].Lesson.ID)
	assert.Equal(t, 0, cols[0].Events[0].Lane)
	assert.Equal(t, "t2", cols[0].Events[1].Lesson.ID)
	assert.Equal(t, 1, cols[0].Events[1].Lane)
}

func TestParseClock(t *testing.T) {
	min, ok := parseClock("09:30")
	assert.True(t, ok)
	assert.Equal(t, 570, min)

	min, ok = parseClock("14")
	assert.True(t, ok)
	assert.Equal(t, 840, min)

	_, ok = parseClock("noon")
	assert.False(t, ok)
}
