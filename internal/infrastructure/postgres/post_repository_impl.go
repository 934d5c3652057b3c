package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, summary, content, cover, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Summary, p.Content, p.Cover, p.AuthorID)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	ctx := context.Background()
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.title, p.summary, p.content, p.cover, p.author_id, u.username,
		       p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.Summary, &p.Content, &p.Cover,
		&p.AuthorID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) ListRecent(limit int) ([]*entity.Post, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, p.summary, p.content, p.cover, p.author_id, u.username,
		       p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0, limit)
	for rows.Next() {
		p := &entity.Post{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Content, &p.Cover,
			&p.AuthorID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(p *entity.Post) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	// author_id is never part of the SET list; it is immutable after insert.
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, summary = $2, content = $3, cover = $4, updated_at = $5
		WHERE id = $6
	`, p.Title, p.Summary, p.Content, p.Cover, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
