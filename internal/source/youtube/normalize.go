package youtube

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	yt "google.golang.org/api/youtube/v3"

	"church_backend/internal/domain"
)

const (
	videoIDLength      = 11
	maxDescriptionLen  = 150
	defaultTitle       = "Untitled Video"
	defaultDescription = "No description available"
	defaultPreacher    = "Pastor Samuel Reyes"
)

// The title word matches case-insensitively, with "pastora" before "pastor"
// in the alternation so it never matches as "pastor" plus a stray letter.
// Name tokens must be capitalized words, which stops the match at the first
// piece of trailing prose.
var preacherRegexp = regexp.MustCompile(`(?i:\b(pastora|pastor))((?:\s+[A-ZÀ-ÖØ-Þ][A-Za-zÀ-ÖØ-öø-ÿ]*)+)`)

var durationRegexp = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// normalizeVideo converts one YouTube video record into a canonical sermon.
// An id that is not exactly 11 characters rejects the record.
func normalizeVideo(video *yt.Video) (domain.Sermon, error) {
	if len(video.Id) != videoIDLength {
		return domain.Sermon{}, fmt.Errorf("invalid video id %q: expected %d characters, got %d",
			video.Id, videoIDLength, len(video.Id))
	}

	sermon := domain.Sermon{
		ExternalVideoID: video.Id,
		Title:           defaultTitle,
		Preacher:        defaultPreacher,
		Description:     defaultDescription,
		Category:        domain.SermonCategorySunday,
		Duration:        "0:00",
		ViewCount:       "0",
		LikeCount:       "0",
	}

	if video.Snippet != nil {
		if video.Snippet.Title != "" {
			sermon.Title = video.Snippet.Title
		}
		if desc := strings.TrimSpace(video.Snippet.Description); desc != "" {
			sermon.Description = truncateDescription(desc, maxDescriptionLen)
		}
		if preacher := extractPreacher(video.Snippet.Description); preacher != "" {
			sermon.Preacher = preacher
		}
		if publishedAt, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt); err == nil {
			sermon.PublishedAt = publishedAt
			sermon.DisplayDate = publishedAt.Format("January 2, 2006")
		}
	}

	if video.ContentDetails != nil {
		sermon.Duration = formatDuration(video.ContentDetails.Duration)
	}

	if video.Statistics != nil {
		sermon.ViewCount = fmt.Sprintf("%d", video.Statistics.ViewCount)
		sermon.LikeCount = fmt.Sprintf("%d", video.Statistics.LikeCount)
	}

	return sermon, nil
}

// extractPreacher finds "Pastor <name>" or "Pastora <name>" in the
// description, case-insensitively, and returns it with the title word
// capitalized. Returns "" when no match.
func extractPreacher(description string) string {
	match := preacherRegexp.FindStringSubmatch(description)
	if match == nil {
		return ""
	}

	title := capitalize(match[1])
	name := strings.Join(strings.Fields(match[2]), " ")

	return title + " " + name
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// formatDuration converts an ISO-8601 duration (PT#H#M#S, each component
// optional) into "H:MM:SS", or "M:SS" when there is no hour component.
// Anything that does not match yields "0:00".
func formatDuration(iso string) string {
	match := durationRegexp.FindStringSubmatch(iso)
	if match == nil {
		return "0:00"
	}

	hours := atoi(match[1])
	minutes := atoi(match[2])
	seconds := atoi(match[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// truncateDescription cuts the text to at most limit characters, breaking at
// the last space inside the window when one exists, and appends "...".
func truncateDescription(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}

	return strings.TrimSpace(cut) + "..."
}
