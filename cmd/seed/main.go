package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-blog-api/config"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash, avatar)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET updated_at = now()
		RETURNING id
	`, username, hash, "").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	posts := []struct {
		title, summary, content string
	}{
		{"Hello world", "First post", "Welcome to the blog."},
		{"Second post", "More content", "Posts are listed newest first."},
	}
	for _, p := range posts {
		var postID string
		if err := db.QueryRow(`
			INSERT INTO posts (title, summary, content, cover, author_id)
			VALUES ($1, $2, $3, '', $4)
			RETURNING id
		`, p.title, p.summary, p.content, id).Scan(&postID); err != nil {
			log.Fatalf("failed to seed post: %v", err)
		}
		fmt.Printf("seeded post: id=%s title=%q\n", postID, p.title)
	}
}
