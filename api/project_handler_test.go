package api

import (
	"net/http"
	"testing"

	"github.com/ksalau/learnflow-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_PublicListAndGet(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	// empty list is an array, not null
	rec := server.do(t, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = server.do(t, http.MethodPost, "/projects", token, map[string]any{
		"title":       "Compliance Course",
		"description": "desc",
		"category":    "elearning",
		"tools":       []string{"Rise"},
		"featured":    true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Project
	decodeBody(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.StringList{"Rise"}, created.Tools)

	rec = server.do(t, http.MethodGet, "/projects/"+created.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.do(t, http.MethodGet, "/projects?featured=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []models.Project
	decodeBody(t, rec, &filtered)
	require.Len(t, filtered, 1)

	rec = server.do(t, http.MethodGet, "/projects?featured=false", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &filtered)
	assert.Empty(t, filtered)
}

func TestProjects_ListNewestFirst(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	for _, title := range []string{"Project 1", "Project 2"} {
		rec := server.do(t, http.MethodPost, "/projects", token, map[string]any{
			"title": title, "description": "d", "category": "c",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := server.do(t, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var projects []models.Project
	decodeBody(t, rec, &projects)
	require.Len(t, projects, 2)
	assert.Equal(t, "Project 2", projects[0].Title)
	assert.Equal(t, "Project 1", projects[1].Title)
}

func TestProjects_CreateValidation(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	rec := server.do(t, http.MethodPost, "/projects", token, map[string]any{
		"description": "missing title",
		"category":    "c",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "title", body["field"])
}

func TestProjects_PartialUpdate(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	project := models.NewProject(models.InsertProject{
		Title: "Before", Description: "keep", Category: "c",
	})
	require.NoError(t, server.db.ProjectRepo().Add(project))

	rec := server.do(t, http.MethodPut, "/projects/"+project.ID.String(), token, map[string]any{
		"title": "After",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Project
	decodeBody(t, rec, &updated)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "keep", updated.Description)
}

func TestProjects_GetAndUpdateMissingIs404(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	missing := "/projects/00000000-0000-0000-0000-000000000001"

	rec := server.do(t, http.MethodGet, missing, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = server.do(t, http.MethodPut, missing, token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = server.do(t, http.MethodDelete, missing, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjects_BadIDIs400(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodGet, "/projects/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjects_Delete(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	project := models.NewProject(models.InsertProject{
		Title: "Doomed", Description: "d", Category: "c",
	})
	require.NoError(t, server.db.ProjectRepo().Add(project))

	rec := server.do(t, http.MethodDelete, "/projects/"+project.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = server.do(t, http.MethodGet, "/projects/"+project.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
