package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/ksalau/learnflow-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the 8-byte PNG signature, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func multipartBody(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func (s *testServer) doMultipart(t *testing.T, method, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestUploadBlogImage_AcceptsPNG(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	body, contentType := multipartBody(t, "image", "chart.png", "image/png", pngHeader)
	rec := server.doMultipart(t, http.MethodPost, "/upload/blog-image", token, body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Success      bool   `json:"success"`
		Filename     string `json:"filename"`
		OriginalName string `json:"originalName"`
		URL          string `json:"url"`
		Mimetype     string `json:"mimetype"`
	}
	decodeBody(t, rec, &result)
	assert.True(t, result.Success)
	assert.Equal(t, "chart.png", result.OriginalName)
	assert.Equal(t, "image/png", result.Mimetype)
	assert.NotEmpty(t, result.URL)
}

func TestUploadBlogImage_SniffsRealContentType(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	// claims to be a PNG but is plain text; the sniffed type wins
	body, contentType := multipartBody(t, "image", "fake.png", "image/png", []byte("just some text"))
	rec := server.doMultipart(t, http.MethodPost, "/upload/blog-image", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadBlogImage_MissingFileIs400(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "boss", models.RoleAdmin)

	body, contentType := multipartBody(t, "wrongfield", "a.png", "image/png", pngHeader)
	rec := server.doMultipart(t, http.MethodPost, "/upload/blog-image", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadBlogImage_RequiresAdmin(t *testing.T) {
	server := newTestServer(t)
	_, token := server.createUser(t, "plain", models.RoleUser)

	body, contentType := multipartBody(t, "image", "a.png", "image/png", pngHeader)
	rec := server.doMultipart(t, http.MethodPost, "/upload/blog-image", token, body, contentType)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
