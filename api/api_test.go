package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/ksalau/learnflow-backend/auth"
	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/ksalau/learnflow-backend/uploads"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer bundles a fully wired router with the collaborators tests
// need to reach behind the HTTP surface.
type testServer struct {
	router *chi.Mux
	db     database.Database
	tokens auth.TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(gormDB))
	db := database.New(gormDB)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	store, err := uploads.NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	deps := handlerDeps{
		tokens:      tokens,
		google:      auth.NewGoogleAuthenticator("", "", "", auth.NewAdminPolicy(nil), db.UserRepo()),
		store:       store,
		frontendURL: "http://frontend.test",
		site: siteMeta{
			URL:         "http://site.test",
			Title:       "Test Site",
			Description: "test description",
		},
		validate: validator.New(),
	}

	router := chi.NewRouter()
	setupRoutes(router, initializeHandlers(db, deps), newAuthMiddleware(tokens, db.UserRepo()), time.Now())

	return &testServer{router: router, db: db, tokens: tokens}
}

// createUser persists a user with the given role and returns it with a
// freshly issued token.
func (s *testServer) createUser(t *testing.T, username, role string) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	user := models.NewUser(models.InsertUser{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
	})
	require.NoError(t, s.db.UserRepo().Add(user))

	token, err := s.tokens.Issue(user)
	require.NoError(t, err)
	return user, token
}

// do performs a request against the router, JSON-encoding a non-nil body.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	require.Equal(t, "ok", body["status"])
}
