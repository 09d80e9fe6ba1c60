package services

import (
	"fmt"
	"time"

	"novelhub/internal/db"
	"novelhub/internal/models"
)

type CreateCommentInput struct {
	NovelID  int
	Content  string
	Author   string
	AuthorID string
}

type CommentService struct {
	store *db.Store
	now   func() time.Time
}

func NewCommentService(store *db.Store) *CommentService {
	return &CommentService{store: store, now: clock}
}

// CreateComment appends a comment and bumps the parent novel's counter. The
// novel id is not checked: a comment on an unknown novel is stored and no
// counter moves.
func (s *CommentService) CreateComment(actor Actor, in CreateCommentInput) (models.Comment, error) {
	var created models.Comment
	err := s.store.UpdateNovelsAndComments(func(novels []models.Novel, comments []models.Comment) ([]models.Novel, []models.Comment, error) {
		created = models.Comment{
			ID:        len(comments) + 1,
			NovelID:   in.NovelID,
			Author:    resolveAuthor(in.Author, actor),
			AuthorID:  resolveAuthorID(in.AuthorID, actor),
			Content:   in.Content,
			Likes:     0,
			CreatedAt: models.NewTimestamp(s.now()),
		}
		for i := range novels {
			if novels[i].ID == in.NovelID {
				novels[i].Comments++
			}
		}
		return novels, append(comments, created), nil
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment on novel %d: %w", in.NovelID, err)
	}
	return created, nil
}

// ListComments returns the comments of one novel in creation order.
func (s *CommentService) ListComments(novelID int) ([]models.Comment, error) {
	comments, err := s.store.Comments.Load()
	if err != nil {
		return nil, fmt.Errorf("list comments of novel %d: %w", novelID, err)
	}
	return commentsFor(comments, novelID), nil
}

func commentsFor(comments []models.Comment, novelID int) []models.Comment {
	out := make([]models.Comment, 0)
	for _, c := range comments {
		if c.NovelID == novelID {
			out = append(out, c)
		}
	}
	return out
}
