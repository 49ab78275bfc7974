package gcal

import (
	"strings"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"church_backend/internal/domain"
)

const (
	defaultTitle       = "Untitled Event"
	defaultLocation    = "Location TBD"
	defaultDescription = "Join us for this upcoming event"
	allDayLabel        = "All Day"

	dateLayout = "Monday, January 2, 2006"
	timeLayout = "3:04 PM"
)

// categoryKeywords is checked in order; the first category with a matching
// keyword wins, so Worship outranks Youth, Youth outranks Community, and
// Community outranks Special.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{domain.EventCategoryWorship, []string{"worship", "service", "sunday", "prayer", "mass"}},
	{domain.EventCategoryYouth, []string{"youth", "teen", "young", "student"}},
	{domain.EventCategoryCommunity, []string{"community", "outreach", "volunteer", "food", "service project", "study"}},
	{domain.EventCategorySpecial, []string{"special", "celebration", "anniversary", "holiday", "easter", "christmas"}},
}

// normalizeEvent converts one calendar record into a canonical event.
func normalizeEvent(item *gcal.Event) domain.Event {
	event := domain.Event{
		Title:       defaultTitle,
		Location:    defaultLocation,
		Description: defaultDescription,
	}

	if item.Summary != "" {
		event.Title = item.Summary
	}
	if item.Location != "" {
		event.Location = item.Location
	}
	if desc := strings.TrimSpace(item.Description); desc != "" {
		event.Description = desc
	}
	if item.Id != "" {
		id := item.Id
		event.ExternalEventID = &id
	}

	event.Date, event.Time = extractDateTime(item.Start)
	event.Category = categorize(item.Summary, item.Description)

	return event
}

// extractDateTime formats the start of an event. A start carrying only a
// date (no clock time) is an all-day event.
func extractDateTime(start *gcal.EventDateTime) (string, string) {
	if start == nil {
		return "", ""
	}

	if start.DateTime != "" {
		t, err := time.Parse(time.RFC3339, start.DateTime)
		if err != nil {
			return "", ""
		}
		return t.Format(dateLayout), t.Format(timeLayout)
	}

	if start.Date != "" {
		d, err := time.Parse("2006-01-02", start.Date)
		if err != nil {
			return "", allDayLabel
		}
		return d.Format(dateLayout), allDayLabel
	}

	return "", ""
}

// categorize derives the event category from keywords in the title and
// description. No match defaults to Community.
func categorize(title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.category
			}
		}
	}

	return domain.EventCategoryCommunity
}
