package domain

import "time"

// Sermon categories. Videos synced from the channel default to Sunday Service;
// the category is an editorial field, not derived from content.
const (
	SermonCategorySunday  = "Sunday Service"
	SermonCategoryPrayer  = "Prayer Meeting"
	SermonCategoryBible   = "Bible Study"
	SermonCategorySpecial = "Special Event"
	SermonCategoryYouth   = "Youth Service"
)

// Sermon is one published video surfaced on the sermons page.
type Sermon struct {
	ID              int64     `db:"id" json:"-"`
	Title           string    `db:"title" json:"title"`
	Preacher        string    `db:"preacher" json:"preacher"`
	DisplayDate     string    `db:"display_date" json:"displayDate"`
	Description     string    `db:"description" json:"description"`
	ExternalVideoID string    `db:"external_video_id" json:"externalVideoId"`
	Category        string    `db:"category" json:"category"`
	PublishedAt     time.Time `db:"published_at" json:"publishedAt"`
	Duration        string    `db:"duration" json:"duration"`
	ViewCount       string    `db:"view_count" json:"viewCount"`
	LikeCount       string    `db:"like_count" json:"likeCount"`
	IsFeatured      bool      `db:"is_featured" json:"isFeatured"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`
}
