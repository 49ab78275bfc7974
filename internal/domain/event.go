package domain

import "time"

// Event categories, in keyword-match priority order (see source/gcal).
const (
	EventCategoryWorship   = "Worship"
	EventCategoryYouth     = "Youth"
	EventCategoryCommunity = "Community"
	EventCategorySpecial   = "Special"
)

// Event is one calendar occurrence surfaced on the events page.
type Event struct {
	ID              int64     `db:"id" json:"-"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	Location        string    `db:"location" json:"location"`
	Date            string    `db:"event_date" json:"date"`
	Time            string    `db:"event_time" json:"time"`
	Category        string    `db:"category" json:"category"`
	ExternalEventID *string   `db:"external_event_id" json:"externalEventId,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`
}

// FallbackEvents is served when the store holds no events, so the events page
// never renders empty while the calendar source is down or not yet synced.
func FallbackEvents() []Event {
	return []Event{
		{
			Title:       "Sunday Worship Service",
			Description: "Join us for our weekly worship service with praise, prayer and the Word.",
			Location:    "Main Sanctuary",
			Date:        "Every Sunday",
			Time:        "10:00 AM",
			Category:    EventCategoryWorship,
		},
		{
			Title:       "Midweek Bible Study",
			Description: "A deeper look at the Scriptures in a small-group setting.",
			Location:    "Fellowship Hall",
			Date:        "Every Wednesday",
			Time:        "7:00 PM",
			Category:    EventCategoryCommunity,
		},
		{
			Title:       "Youth Night",
			Description: "Games, worship and a message for teens and young adults.",
			Location:    "Youth Room",
			Date:        "Every Friday",
			Time:        "6:30 PM",
			Category:    EventCategoryYouth,
		},
	}
}
