package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/ksalau/learnflow-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T, server *testServer) (published, draft *models.BlogPost) {
	t.Helper()

	published = models.NewBlogPost(models.InsertBlogPost{
		Title:     "Scenario Design",
		Excerpt:   "branching scenarios",
		Content:   "How to branch well",
		Category:  "design",
		Published: true,
	})
	published.CreatedAt = time.Now().UTC().Add(-time.Hour)
	published.UpdatedAt = published.CreatedAt

	draft = models.NewBlogPost(models.InsertBlogPost{
		Title:    "Unfinished",
		Excerpt:  "e",
		Content:  "c",
		Category: "notes",
	})

	require.NoError(t, server.db.BlogPostRepo().Add(published))
	require.NoError(t, server.db.BlogPostRepo().Add(draft))
	return published, draft
}

func TestBlogPosts_ListWithFilters(t *testing.T) {
	server := newTestServer(t)
	published, draft := seedPosts(t, server)

	rec := server.do(t, http.MethodGet, "/blog-posts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []models.BlogPost
	decodeBody(t, rec, &posts)
	require.Len(t, posts, 2)
	assert.Equal(t, draft.ID, posts[0].ID)

	rec = server.do(t, http.MethodGet, "/blog-posts?search=BRANCH", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, published.ID, posts[0].ID)

	rec = server.do(t, http.MethodGet, "/blog-posts?category=notes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, draft.ID, posts[0].ID)
}

func TestBlogPosts_CreateRequiresAdmin(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPost, "/blog-posts", "", map[string]any{
		"title": "t", "excerpt": "e", "content": "c", "category": "d",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBlogPosts_CreateAndUpdate(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	rec := server.do(t, http.MethodPost, "/blog-posts", token, map[string]any{
		"title":    "New Post",
		"excerpt":  "e",
		"content":  "c",
		"category": "design",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.BlogPost
	decodeBody(t, rec, &created)
	assert.False(t, created.Published)

	rec = server.do(t, http.MethodPut, "/blog-posts/"+created.ID.String(), token, map[string]any{
		"published": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.BlogPost
	decodeBody(t, rec, &updated)
	assert.True(t, updated.Published)
	assert.Equal(t, "New Post", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}
