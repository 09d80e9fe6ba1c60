package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"novelhub/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	NovelsFile   = "novels.json"
	CommentsFile = "comments.json"
	UsersFile    = "users.json"
)

// ErrPartialWrite means one write of a two-collection update landed and the
// other did not. The collections are left out of sync.
var ErrPartialWrite = errors.New("partial write")

type Options struct {
	ReseedOnCorrupt bool
	Logger          *zap.Logger
}

// Store groups the three collections kept under one data directory.
type Store struct {
	Novels   *Collection[models.Novel]
	Comments *Collection[models.Comment]
	Users    *Collection[models.User]

	log *zap.Logger
}

// Open prepares the collections under dir. Files are created lazily on first
// load; call Init to create them eagerly. ReseedOnCorrupt covers novels and
// comments only: an unreadable users document is always a hard error, since
// replacing it would hand out ids that already belong to someone.
func Open(dir string, opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		Novels:   NewCollection(filepath.Join(dir, NovelsFile), seedNovels, opts.ReseedOnCorrupt, log),
		Comments: NewCollection(filepath.Join(dir, CommentsFile), seedComments, opts.ReseedOnCorrupt, log),
		Users:    NewCollection[models.User](filepath.Join(dir, UsersFile), nil, false, log),
		log:      log,
	}
}

// Init loads every collection once, seeding absent ones and failing on
// corrupt ones.
func (s *Store) Init() error {
	if _, err := s.Novels.Load(); err != nil {
		return fmt.Errorf("init novels: %w", err)
	}
	if _, err := s.Comments.Load(); err != nil {
		return fmt.Errorf("init comments: %w", err)
	}
	if _, err := s.Users.Load(); err != nil {
		return fmt.Errorf("init users: %w", err)
	}
	s.log.Info("data store ready",
		zap.String("novels", s.Novels.Path()),
		zap.String("comments", s.Comments.Path()),
		zap.String("users", s.Users.Path()),
	)
	return nil
}

// LoadNovelsAndComments reads both collections concurrently.
func (s *Store) LoadNovelsAndComments() ([]models.Novel, []models.Comment, error) {
	var (
		novels   []models.Novel
		comments []models.Comment
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		novels, err = s.Novels.Load()
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.Comments.Load()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return novels, comments, nil
}

// UpdateNovelsAndComments is the one place a logical update spans both
// collections. Locks are taken novels first, then comments. The two writes run
// concurrently and are not atomic as a pair: if exactly one fails the result
// wraps ErrPartialWrite.
func (s *Store) UpdateNovelsAndComments(fn func(novels []models.Novel, comments []models.Comment) ([]models.Novel, []models.Comment, error)) error {
	s.Novels.mu.Lock()
	defer s.Novels.mu.Unlock()
	s.Comments.mu.Lock()
	defer s.Comments.mu.Unlock()

	var (
		novels   []models.Novel
		comments []models.Comment
		load     errgroup.Group
	)
	load.Go(func() error {
		var err error
		novels, err = s.Novels.loadLocked()
		return err
	})
	load.Go(func() error {
		var err error
		comments, err = s.Comments.loadLocked()
		return err
	})
	if err := load.Wait(); err != nil {
		return err
	}

	updatedNovels, updatedComments, err := fn(novels, comments)
	if err != nil {
		return err
	}

	// Both writes always run; each error is checked on its own.
	var (
		novelsErr, commentsErr error
		save                   sync.WaitGroup
	)
	save.Go(func() {
		commentsErr = s.Comments.saveLocked(updatedComments)
	})
	save.Go(func() {
		novelsErr = s.Novels.saveLocked(updatedNovels)
	})
	save.Wait()

	switch {
	case novelsErr == nil && commentsErr == nil:
		return nil
	case novelsErr != nil && commentsErr != nil:
		return errors.Join(commentsErr, novelsErr)
	case novelsErr != nil:
		s.log.Error("comments saved but novels were not; comment counters are out of sync", zap.Error(novelsErr))
		return fmt.Errorf("%w: %w", ErrPartialWrite, novelsErr)
	default:
		s.log.Error("novels saved but comments were not; comment counters are out of sync", zap.Error(commentsErr))
		return fmt.Errorf("%w: %w", ErrPartialWrite, commentsErr)
	}
}

func seedNovels() []models.Novel {
	return []models.Novel{
		{
			ID:          1,
			Title:       "The Midnight Garden",
			Content:     "In the depths of winter, when the moon cast long shadows...",
			Excerpt:     "In the depths of winter, when the moon cast long shadows...",
			Author:      "Alice Thompson",
			AuthorID:    "user1",
			Likes:       42,
			Comments:    15,
			Tags:        []string{"Fantasy", "Mystery"},
			CreatedAt:   now(),
			ReadingTime: "5 min",
			Status:      models.NovelPublished,
		},
	}
}

func seedComments() []models.Comment {
	return []models.Comment{
		{
			ID:        1,
			NovelID:   1,
			Author:    "Sarah Wilson",
			AuthorID:  "user3",
			Content:   "This story gave me chills! Can't wait to read more.",
			Likes:     12,
			CreatedAt: now(),
		},
	}
}

func now() models.Timestamp {
	return models.NewTimestamp(time.Now())
}
