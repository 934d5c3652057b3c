package application

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
)

type fakePostRepo struct {
	posts map[string]*entity.Post
	clock time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*entity.Post{}, clock: time.Now()}
}

func (r *fakePostRepo) Create(p *entity.Post) error {
	p.ID = uuid.NewString()
	r.clock = r.clock.Add(time.Second)
	p.CreatedAt = r.clock
	p.UpdatedAt = r.clock
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(id string) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) ListRecent(limit int) ([]*entity.Post, error) {
	all := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakePostRepo) Update(p *entity.Post) error {
	stored, ok := r.posts[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *p
	cp.AuthorID = stored.AuthorID
	r.posts[p.ID] = &cp
	return nil
}

func TestUpdateByAuthor(t *testing.T) {
	svc := NewPostService(newFakePostRepo(), nil)
	author := uuid.NewString()

	created, err := svc.Create(author, "title", "summary", "content", "uploads/a.png")
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, author, UpdateInput{
		Title:   "new title",
		Summary: "new summary",
		Content: "new content",
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, author, updated.AuthorID)
	// no new upload: stored cover path is retained
	assert.Equal(t, "uploads/a.png", updated.Cover)
}

func TestUpdateByNonAuthorLeavesPostUnchanged(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo, nil)
	author := uuid.NewString()
	other := uuid.NewString()

	created, err := svc.Create(author, "title", "summary", "content", "uploads/a.png")
	require.NoError(t, err)

	_, err = svc.Update(created.ID, other, UpdateInput{
		Title:   "hijacked",
		Summary: "hijacked",
		Content: "hijacked",
	})
	assert.ErrorIs(t, err, ErrNotAuthor)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "title", stored.Title)
	assert.Equal(t, "uploads/a.png", stored.Cover)
	assert.Equal(t, author, stored.AuthorID)
}

func TestUpdateReplacesCoverOnlyWithNewUpload(t *testing.T) {
	svc := NewPostService(newFakePostRepo(), nil)
	author := uuid.NewString()

	created, err := svc.Create(author, "title", "summary", "content", "uploads/old.jpg")
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, author, UpdateInput{
		Title:    "title",
		Summary:  "summary",
		Content:  "content",
		NewCover: "uploads/new.PNG",
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/new.PNG", updated.Cover)
}

func TestUpdateUnknownPost(t *testing.T) {
	svc := NewPostService(newFakePostRepo(), nil)

	_, err := svc.Update(uuid.NewString(), uuid.NewString(), UpdateInput{
		Title: "t", Summary: "s", Content: "c",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListRecentWindow(t *testing.T) {
	svc := NewPostService(newFakePostRepo(), nil)
	author := uuid.NewString()

	for i := 1; i <= 7; i++ {
		_, err := svc.Create(author, fmt.Sprintf("post %d", i), "s", "c", "")
		require.NoError(t, err)
	}

	posts, err := svc.ListRecent(6)
	require.NoError(t, err)
	require.Len(t, posts, 6)

	// newest first, the oldest post fell out of the window
	assert.Equal(t, "post 7", posts[0].Title)
	assert.Equal(t, "post 2", posts[5].Title)
	for i := 1; i < len(posts); i++ {
		assert.True(t, posts[i-1].CreatedAt.After(posts[i].CreatedAt))
	}
}

func TestListRecentCapsLimit(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo, nil)
	author := uuid.NewString()

	for i := 0; i < MaxRecentPosts+5; i++ {
		_, err := svc.Create(author, fmt.Sprintf("post %d", i), "s", "c", "")
		require.NoError(t, err)
	}

	posts, err := svc.ListRecent(1000)
	require.NoError(t, err)
	assert.Len(t, posts, MaxRecentPosts)
}

func TestGetByIDUnknown(t *testing.T) {
	svc := NewPostService(newFakePostRepo(), nil)
	_, err := svc.GetByID(uuid.NewString())
	assert.ErrorIs(t, err, ErrPostNotFound)
}
