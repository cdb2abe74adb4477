package api

import (
	"net/http"
	"testing"

	"github.com/ksalau/learnflow-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmissions_PublicCreate(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPost, "/contact-submissions", "", map[string]any{
		"firstName": "Dana",
		"lastName":  "Lee",
		"email":     "dana@example.com",
		"message":   "Looking for a course build",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.ContactSubmission
	decodeBody(t, rec, &created)
	assert.Equal(t, "Dana", created.FirstName)

	all, err := server.db.ContactRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestContactSubmissions_CreateValidatesEmail(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPost, "/contact-submissions", "", map[string]any{
		"firstName": "Dana",
		"lastName":  "Lee",
		"email":     "not-an-email",
		"message":   "hi",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "email", body["field"])
}

func TestContactSubmissions_ListRequiresAdmin(t *testing.T) {
	server := newTestServer(t)
	_, userToken := server.createUser(t, "plain", models.RoleUser)
	_, adminToken := server.createUser(t, "boss", models.RoleAdmin)

	rec := server.do(t, http.MethodGet, "/contact-submissions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = server.do(t, http.MethodGet, "/contact-submissions", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = server.do(t, http.MethodGet, "/contact-submissions", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactSubmissions_Delete(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	submission := models.NewContactSubmission(models.InsertContact{
		FirstName: "Dana", LastName: "Lee", Email: "dana@example.com", Message: "hi",
	})
	require.NoError(t, server.db.ContactRepo().Add(submission))

	rec := server.do(t, http.MethodDelete, "/contact-submissions/"+submission.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = server.do(t, http.MethodDelete, "/contact-submissions/"+submission.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
