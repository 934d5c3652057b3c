package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	postapp "github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/infrastructure/localfs"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/response"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

type PostHandler struct {
	Svc     *postapp.PostService
	Storage *localfs.Storage
	Logger  *logrus.Logger
}

func NewPostHandler(svc *postapp.PostService, storage *localfs.Storage, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Storage: storage, Logger: logger}
}

type createPostRequest struct {
	Title   string `form:"title" binding:"required"`
	Summary string `form:"summary" binding:"required"`
	Content string `form:"content" binding:"required"`
}

type updatePostRequest struct {
	ID      string `form:"id" binding:"required,uuid"`
	Title   string `form:"title" binding:"required"`
	Summary string `form:"summary" binding:"required"`
	Content string `form:"content" binding:"required"`
}

func postJSON(p *entity.Post) gin.H {
	return gin.H{
		"id":         p.ID,
		"title":      p.Title,
		"summary":    p.Summary,
		"content":    p.Content,
		"cover":      p.Cover,
		"author":     gin.H{"id": p.AuthorID, "username": p.AuthorName},
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

// Create - POST /create_post, multipart: file, title, summary, content
func (h *PostHandler) Create(c *gin.Context) {
	authorID := c.GetString(middleware.CtxUserIDKey)

	var req createPostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cover file is required", nil)
		return
	}

	coverPath, err := h.Storage.Store(fh)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("cover upload failed")
		}
		response.Error[any](c, http.StatusBadRequest, "cover upload failed", nil)
		return
	}

	p, err := h.Svc.Create(authorID, req.Title, req.Summary, req.Content, coverPath)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "create post failed", nil)
		return
	}
	p.AuthorName = c.GetString(middleware.CtxUsernameKey)
	response.Success(c, http.StatusCreated, postJSON(p), "post created", nil)
}

// List - GET /post; up to 20 most-recent posts, newest first
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.ListRecent(postapp.MaxRecentPosts)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list posts failed")
		}
		response.Error[any](c, http.StatusBadRequest, "list posts failed", nil)
		return
	}
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, postJSON(p))
	}
	response.Success(c, http.StatusOK, out, "recent posts", map[string]any{"count": len(out)})
}

// Get - GET /post/:id
func (h *PostHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	p, err := h.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, postapp.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "get post failed", nil)
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "post", nil)
}

// Update - PUT /post, multipart: id, title, summary, content, optional file.
// Only the post's author may update; the cover is replaced only when a new
// file was uploaded.
func (h *PostHandler) Update(c *gin.Context) {
	requesterID := c.GetString(middleware.CtxUserIDKey)

	var req updatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	newCover := ""
	if fh, err := c.FormFile("file"); err == nil {
		path, err := h.Storage.Store(fh)
		if err != nil {
			if h.Logger != nil {
				h.Logger.WithError(err).Error("cover upload failed")
			}
			response.Error[any](c, http.StatusBadRequest, "cover upload failed", nil)
			return
		}
		newCover = path
	}

	p, err := h.Svc.Update(req.ID, requesterID, postapp.UpdateInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		NewCover: newCover,
	})
	if err != nil {
		switch {
		case errors.Is(err, postapp.ErrNotAuthor):
			response.Error[any](c, http.StatusBadRequest, "you are not the author", nil)
		case errors.Is(err, postapp.ErrPostNotFound):
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
		default:
			response.Error[any](c, http.StatusBadRequest, "update post failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "post updated", nil)
}
