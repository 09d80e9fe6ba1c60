package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"novelhub/internal/db"
	"novelhub/internal/models"
	"novelhub/internal/utils"
)

const (
	excerptLength  = 150
	wordsPerMinute = 200
	defaultTag     = "General"

	SortNew = "new"
	SortHot = "hot"
)

type CreateNovelInput struct {
	Title    string
	Content  string
	Author   string
	AuthorID string
	Tags     []string
}

type NovelFilter struct {
	Tag  string // exact tag match, empty for all
	Sort string // SortNew (file order) or SortHot
}

type NovelService struct {
	store *db.Store
	now   func() time.Time
}

func NewNovelService(store *db.Store) *NovelService {
	return &NovelService{store: store, now: clock}
}

// CreateNovel prepends a new published novel and persists the collection.
// Title and content are stored as given, empty or not.
func (s *NovelService) CreateNovel(actor Actor, in CreateNovelInput) (models.Novel, error) {
	var created models.Novel
	err := s.store.Novels.Update(func(novels []models.Novel) ([]models.Novel, error) {
		created = models.Novel{
			ID:          len(novels) + 1,
			Title:       in.Title,
			Content:     in.Content,
			Excerpt:     excerptOf(in.Content),
			Author:      resolveAuthor(in.Author, actor),
			AuthorID:    resolveAuthorID(in.AuthorID, actor),
			Likes:       0,
			Comments:    0,
			Tags:        tagsOrDefault(in.Tags),
			CreatedAt:   models.NewTimestamp(s.now()),
			ReadingTime: readingTimeOf(in.Content),
			Status:      models.NovelPublished,
		}
		return append([]models.Novel{created}, novels...), nil
	})
	if err != nil {
		return models.Novel{}, fmt.Errorf("create novel: %w", err)
	}
	return created, nil
}

// LikeNovel adds one like to the novel with id. ok is false when no novel
// matches; the collection is rewritten unchanged in that case.
func (s *NovelService) LikeNovel(id int) (novel models.Novel, ok bool, err error) {
	err = s.store.Novels.Update(func(novels []models.Novel) ([]models.Novel, error) {
		for i := range novels {
			if novels[i].ID == id {
				novels[i].Likes++
				novel, ok = novels[i], true
				break
			}
		}
		return novels, nil
	})
	if err != nil {
		return models.Novel{}, false, fmt.Errorf("like novel %d: %w", id, err)
	}
	return novel, ok, nil
}

// ListNovels returns novels most recent first, or by hot score.
func (s *NovelService) ListNovels(filter NovelFilter) ([]models.Novel, error) {
	novels, err := s.store.Novels.Load()
	if err != nil {
		return nil, fmt.Errorf("list novels: %w", err)
	}

	out := make([]models.Novel, 0, len(novels))
	for _, n := range novels {
		if filter.Tag == "" || n.HasTag(filter.Tag) {
			out = append(out, n)
		}
	}

	if filter.Sort == SortHot {
		now := s.now()
		sort.SliceStable(out, func(i, j int) bool {
			return utils.HotScore(out[i].CreatedAt.Time, out[i].Likes, out[i].Comments, now) >
				utils.HotScore(out[j].CreatedAt.Time, out[j].Likes, out[j].Comments, now)
		})
	}
	return out, nil
}

// GetNovel returns a novel and its comments in creation order.
func (s *NovelService) GetNovel(id int) (models.Novel, []models.Comment, bool, error) {
	novels, comments, err := s.store.LoadNovelsAndComments()
	if err != nil {
		return models.Novel{}, nil, false, fmt.Errorf("get novel %d: %w", id, err)
	}
	for _, n := range novels {
		if n.ID == id {
			return n, commentsFor(comments, id), true, nil
		}
	}
	return models.Novel{}, nil, false, nil
}

// Feed returns every novel and every comment, the data the index page starts from.
func (s *NovelService) Feed() ([]models.Novel, []models.Comment, error) {
	novels, comments, err := s.store.LoadNovelsAndComments()
	if err != nil {
		return nil, nil, fmt.Errorf("load feed: %w", err)
	}
	return novels, comments, nil
}

func excerptOf(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}

// readingTimeOf counts words by splitting on single spaces, so empty content
// still counts as one word.
func readingTimeOf(content string) string {
	words := len(strings.Split(content, " "))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	return fmt.Sprintf("%d min", minutes)
}

func tagsOrDefault(tags []string) []string {
	if len(tags) == 0 {
		return []string{defaultTag}
	}
	return append([]string(nil), tags...)
}

func clock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type TagCount struct {
	Name   string `json:"name"`
	Novels int    `json:"novels"`
}

// ListTags returns every tag in use with the number of novels carrying it,
// most used first, ties by name.
func (s *NovelService) ListTags() ([]TagCount, error) {
	novels, err := s.store.Novels.Load()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	counts := make(map[string]int)
	for _, n := range novels {
		for _, tag := range n.Tags {
			counts[tag]++
		}
	}

	tags := make([]TagCount, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, TagCount{Name: name, Novels: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Novels != tags[j].Novels {
			return tags[i].Novels > tags[j].Novels
		}
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}
