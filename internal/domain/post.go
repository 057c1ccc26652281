package domain

import "time"

type PostType string

const (
	PostUpdate      PostType = "update"
	PostJobChange   PostType = "job_change"
	PostAchievement PostType = "achievement"
	PostShare       PostType = "share"
)

// Annotation is the label shown next to the author's name.
func (t PostType) Annotation() string {
	switch t {
	case PostAchievement:
		return "shared an achievement"
	case PostJobChange:
		return "started a new position"
	case PostShare:
		return "shared a post"
	default:
		return ""
	}
}

// Post references its author by id. Engagement counters are display-only.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	Type      PostType  `json:"type"`
}
