package models

type Comment struct {
	ID        int       `json:"id"`
	NovelID   int       `json:"novelId"` // not validated against existing novels
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt Timestamp `json:"createdAt"`
}
