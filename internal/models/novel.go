package models

type NovelStatus string

const (
	NovelPublished NovelStatus = "published"
	NovelDraft     NovelStatus = "draft"
)

type Novel struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Excerpt     string      `json:"excerpt"` // first 150 characters of Content plus "...", fixed at creation
	Author      string      `json:"author"`
	AuthorID    string      `json:"authorId"`
	Likes       int         `json:"likes"`
	Comments    int         `json:"comments"` // should match the number of Comment records pointing here
	Tags        []string    `json:"tags"`
	CreatedAt   Timestamp   `json:"createdAt"`
	ReadingTime string      `json:"readingTime"` // e.g. "5 min"
	Status      NovelStatus `json:"status"`
}

// HasTag reports whether tag is one of the novel's tags (exact match).
func (n Novel) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
