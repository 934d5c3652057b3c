package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotAuthor    = errors.New("not the author of this post")
)

// MaxRecentPosts caps the /post listing window.
const MaxRecentPosts = 20

// PostService implements post creation, retrieval and author-guarded updates.
type PostService struct {
	Repo   repo.PostRepository
	Logger *logrus.Logger
}

func NewPostService(r repo.PostRepository, logger *logrus.Logger) *PostService {
	return &PostService{Repo: r, Logger: logger}
}

func (s *PostService) Create(authorID, title, summary, content, coverPath string) (*entity.Post, error) {
	p := &entity.Post{
		Title:    title,
		Summary:  summary,
		Content:  content,
		Cover:    coverPath,
		AuthorID: authorID,
	}
	if err := s.Repo.Create(p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("author_id", authorID).Error("create post failed")
		}
		return nil, err
	}
	return p, nil
}

// ListRecent returns up to limit posts, newest first, author username joined.
func (s *PostService) ListRecent(limit int) ([]*entity.Post, error) {
	if limit <= 0 || limit > MaxRecentPosts {
		limit = MaxRecentPosts
	}
	return s.Repo.ListRecent(limit)
}

func (s *PostService) GetByID(id string) (*entity.Post, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateInput carries the replacement field values for a post update.
// NewCover is applied only when non-empty; otherwise the stored cover stays.
type UpdateInput struct {
	Title    string
	Summary  string
	Content  string
	NewCover string
}

// Update overwrites a post's fields after checking that requesterID matches the
// stored author id. The read and the write are not transactional; concurrent
// updates to the same post are last-writer-wins.
func (s *PostService) Update(id, requesterID string, in UpdateInput) (*entity.Post, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if p.AuthorID != requesterID {
		return nil, ErrNotAuthor
	}

	p.Title = in.Title
	p.Summary = in.Summary
	p.Content = in.Content
	if in.NewCover != "" {
		p.Cover = in.NewCover
	}
	if err := s.Repo.Update(p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}
