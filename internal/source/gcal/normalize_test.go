package gcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gcal "google.golang.org/api/calendar/v3"

	"church_backend/internal/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"worship keyword", "Sunday Worship", "", domain.EventCategoryWorship},
		{"prayer keyword", "Evening Prayer Gathering", "", domain.EventCategoryWorship},
		{"youth keyword", "Teen Game Night", "", domain.EventCategoryYouth},
		{"community keyword", "Food Drive", "help our neighbors", domain.EventCategoryCommunity},
		{"special keyword", "Christmas Concert", "", domain.EventCategorySpecial},
		{"case insensitive", "YOUTH RETREAT", "", domain.EventCategoryYouth},
		{"keyword in description only", "Gathering", "an outreach to the city", domain.EventCategoryCommunity},
		{"worship beats youth", "Youth Worship Night", "", domain.EventCategoryWorship},
		{"youth beats community", "Student Volunteer Day", "", domain.EventCategoryYouth},
		{"community beats special", "Volunteer Celebration", "", domain.EventCategoryCommunity},
		{"no match defaults community", "Board Meeting", "quarterly review", domain.EventCategoryCommunity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorize(tt.title, tt.description))
		})
	}
}

func TestExtractDateTime(t *testing.T) {
	t.Run("timed event", func(t *testing.T) {
		date, timeOfDay := extractDateTime(&gcal.EventDateTime{
			DateTime: "2026-09-06T18:30:00-05:00",
		})
		assert.Equal(t, "Sunday, September 6, 2026", date)
		assert.Equal(t, "6:30 PM", timeOfDay)
	})

	t.Run("date only is all day", func(t *testing.T) {
		date, timeOfDay := extractDateTime(&gcal.EventDateTime{
			Date: "2026-09-07",
		})
		assert.Equal(t, "Monday, September 7, 2026", date)
		assert.Equal(t, "All Day", timeOfDay)
	})

	t.Run("nil start", func(t *testing.T) {
		date, timeOfDay := extractDateTime(nil)
		assert.Empty(t, date)
		assert.Empty(t, timeOfDay)
	})
}

func TestNormalizeEvent(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		event := normalizeEvent(&gcal.Event{
			Id:          "abc123",
			Summary:     "Youth Bible Study",
			Description: "Weekly study for students",
			Location:    "Room 204",
			Start:       &gcal.EventDateTime{DateTime: "2026-09-09T19:00:00-05:00"},
		})

		assert.Equal(t, "Youth Bible Study", event.Title)
		assert.Equal(t, "Room 204", event.Location)
		assert.Equal(t, "Weekly study for students", event.Description)
		assert.Equal(t, domain.EventCategoryYouth, event.Category)
		assert.NotNil(t, event.ExternalEventID)
		assert.Equal(t, "abc123", *event.ExternalEventID)
		assert.Equal(t, "7:00 PM", event.Time)
	})

	t.Run("defaults for empty record", func(t *testing.T) {
		event := normalizeEvent(&gcal.Event{})

		assert.Equal(t, "Untitled Event", event.Title)
		assert.Equal(t, "Location TBD", event.Location)
		assert.Equal(t, defaultDescription, event.Description)
		assert.Equal(t, domain.EventCategoryCommunity, event.Category)
		assert.Nil(t, event.ExternalEventID)
	})
}
