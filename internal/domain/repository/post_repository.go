package repository

import "github.com/oksasatya/go-blog-api/internal/domain/entity"

// PostRepository defines the interface for post-related database operations.
// Reads resolve the author's username into Post.AuthorName.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	ListRecent(limit int) ([]*entity.Post, error)
	Update(p *entity.Post) error
}
