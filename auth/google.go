package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	// ErrNoEmail means the provider's assertion carried no email address.
	ErrNoEmail = errors.New("no email in federated profile")
	// ErrNotAllowed means the asserted email is outside the admin allow-list.
	ErrNotAllowed = errors.New("email not on admin allow-list")
)

// GoogleProfile is the identity asserted by Google after a successful
// OAuth exchange.
type GoogleProfile struct {
	Subject string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// GoogleAuthenticator exchanges a Google-verified identity for a local
// admin user. Accounts created through this path have no local password.
type GoogleAuthenticator struct {
	oauth  *oauth2.Config
	policy AdminPolicy
	users  *database.UserRepo
	logger zerolog.Logger
}

func NewGoogleAuthenticator(clientID, clientSecret, callbackURL string, policy AdminPolicy, users *database.UserRepo) *GoogleAuthenticator {
	return &GoogleAuthenticator{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		policy: policy,
		users:  users,
		logger: log.With().Str("component", "googleAuth").Logger(),
	}
}

// Enabled reports whether OAuth credentials were configured.
func (g *GoogleAuthenticator) Enabled() bool {
	return g.oauth.ClientID != "" && g.oauth.ClientSecret != ""
}

// LoginURL returns the Google consent page URL for the given state.
func (g *GoogleAuthenticator) LoginURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for the asserted profile and
// completes the local login.
func (g *GoogleAuthenticator) Exchange(ctx context.Context, code string) (*models.User, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	resp, err := g.oauth.Client(ctx, token).Get(googleUserinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching google profile: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding google profile: %w", err)
	}

	return g.Login(profile)
}

// Login resolves a verified federated profile to a local user: the email
// must be on the admin allow-list; an existing user gets a login stamp, an
// unknown one is created as admin with an empty password hash. A rejected
// profile never creates a user.
func (g *GoogleAuthenticator) Login(profile GoogleProfile) (*models.User, error) {
	if profile.Email == "" {
		return nil, ErrNoEmail
	}
	if !g.policy.Allows(profile.Email) {
		g.logger.Warn().Str("email", profile.Email).Msg("Rejected federated login outside allow-list")
		return nil, ErrNotAllowed
	}

	user, err := g.users.FindByEmail(profile.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}
	if user != nil {
		if err := g.users.RecordLogin(user.ID); err != nil {
			g.logger.Error().Err(err).Str("userId", user.ID.String()).Msg("Failed to record federated login time")
		}
		return user, nil
	}

	user = models.NewUser(models.InsertUser{
		Username:     strings.SplitN(profile.Email, "@", 2)[0],
		Email:        profile.Email,
		PasswordHash: "",
		Role:         models.RoleAdmin,
	})
	if err := g.users.Add(user); err != nil {
		return nil, fmt.Errorf("creating federated user: %w", err)
	}
	g.logger.Info().Str("email", profile.Email).Msg("Created local admin for federated identity")
	return user, nil
}
