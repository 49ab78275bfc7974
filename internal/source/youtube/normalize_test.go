package youtube

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yt "google.golang.org/api/youtube/v3"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"hours minutes seconds", "PT1H23M45S", "1:23:45"},
		{"minutes seconds", "PT42M7S", "42:07"},
		{"seconds only", "PT59S", "0:59"},
		{"minutes only", "PT5M", "5:00"},
		{"hours only", "PT2H", "2:00:00"},
		{"hours and seconds", "PT1H5S", "1:00:05"},
		{"zero components", "PT", "0:00"},
		{"empty string", "", "0:00"},
		{"garbage", "1h23m", "0:00"},
		{"date component unsupported", "P1DT2H", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.iso))
		})
	}
}

func TestFormatDurationIdempotentShape(t *testing.T) {
	// A parsed duration always round-trips to the same display string.
	for _, iso := range []string{"PT1H2M3S", "PT10M", "PT1S", "PT3H"} {
		first := formatDuration(iso)
		second := formatDuration(iso)
		assert.Equal(t, first, second, "duration formatting must be stable for %s", iso)
	}
}

func TestExtractPreacher(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"basic match", "Message by Pastor Juan Martinez.", "Pastor Juan Martinez"},
		{"lowercase title", "predicado por pastor Carlos Mendoza.", "Pastor Carlos Mendoza"},
		{"uppercase title", "PASTOR David Kim speaking tonight", "Pastor David Kim"},
		{"pastora form", "Palabra de la Pastora Maria Lopez.", "Pastora Maria Lopez"},
		{"accented name", "Mensaje del Pastor José Hernández.", "Pastor José Hernández"},
		{"stops at lowercase prose", "A word from Pastor Juan Martinez on trusting God", "Pastor Juan Martinez"},
		{"no match", "Sunday morning worship service.", ""},
		{"title without name", "Ask your pastor about it.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPreacher(tt.text))
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "short text", truncateDescription("short text", 150))
	})

	t.Run("breaks at word boundary", func(t *testing.T) {
		long := strings.Repeat("word ", 40) // 200 chars
		got := truncateDescription(long, 150)

		require.True(t, strings.HasSuffix(got, "..."))
		body := strings.TrimSuffix(got, "...")
		assert.LessOrEqual(t, len(body), 150)
		assert.False(t, strings.HasSuffix(body, "wor"), "must not split a word")
	})

	t.Run("no space in window", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		got := truncateDescription(long, 150)

		require.True(t, strings.HasSuffix(got, "..."))
		assert.Len(t, strings.TrimSuffix(got, "..."), 150)
	})
}

func TestNormalizeVideo(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		sermon, err := normalizeVideo(&yt.Video{
			Id: "dQw4w9WgXcQ",
			Snippet: &yt.VideoSnippet{
				Title:       "Walking in Faith",
				Description: "A message from Pastor Juan Martinez on trusting God.",
				PublishedAt: "2026-08-23T10:00:00Z",
			},
			ContentDetails: &yt.VideoContentDetails{Duration: "PT45M30S"},
			Statistics:     &yt.VideoStatistics{ViewCount: 1200, LikeCount: 87},
		})
		require.NoError(t, err)

		assert.Equal(t, "Walking in Faith", sermon.Title)
		assert.Equal(t, "Pastor Juan Martinez", sermon.Preacher)
		assert.Equal(t, "dQw4w9WgXcQ", sermon.ExternalVideoID)
		assert.Equal(t, "Sunday Service", sermon.Category)
		assert.Equal(t, "45:30", sermon.Duration)
		assert.Equal(t, "1200", sermon.ViewCount)
		assert.Equal(t, "87", sermon.LikeCount)
		assert.Equal(t, "August 23, 2026", sermon.DisplayDate)
		assert.False(t, sermon.IsFeatured)
	})

	t.Run("defaults for empty record", func(t *testing.T) {
		sermon, err := normalizeVideo(&yt.Video{Id: "AAAAAAAAAAA"})
		require.NoError(t, err)

		assert.Equal(t, "Untitled Video", sermon.Title)
		assert.Equal(t, defaultPreacher, sermon.Preacher)
		assert.Equal(t, "No description available", sermon.Description)
		assert.Equal(t, "0:00", sermon.Duration)
		assert.Equal(t, "0", sermon.ViewCount)
		assert.Equal(t, "0", sermon.LikeCount)
	})

	t.Run("rejects short id", func(t *testing.T) {
		_, err := normalizeVideo(&yt.Video{Id: "short"})
		assert.Error(t, err)
	})

	t.Run("rejects long id", func(t *testing.T) {
		_, err := normalizeVideo(&yt.Video{Id: "twelve-chars"})
		assert.Error(t, err)
	})
}
