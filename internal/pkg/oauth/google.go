// Package oauth implements the Google OAuth 2.0 login flow.
package oauth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	ggoogle "golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuth drives the authorization-code flow against Google.
type GoogleOAuth struct {
	cfg      *oauth2.Config
	stateKey []byte
}

// NewGoogle creates a GoogleOAuth with the given client credentials.
// stateSecret signs the anti-CSRF state parameter.
func NewGoogle(clientID, clientSecret, redirectURL, stateSecret string) *GoogleOAuth {
	return &GoogleOAuth{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     ggoogle.Endpoint,
		},
		stateKey: []byte(stateSecret),
	}
}

// MakeState signs a raw value with HMAC-SHA256 for use as the state parameter.
func (g *GoogleOAuth) MakeState(raw string) string {
	mac := hmac.New(sha256.New, g.stateKey)
	mac.Write([]byte(raw))
	sig := mac.Sum(nil)
	return raw + "." + base64.RawURLEncoding.EncodeToString(sig)
}

// VerifyState checks the HMAC signature of a state value from the callback.
func (g *GoogleOAuth) VerifyState(got string) bool {
	i := strings.IndexByte(got, '.')
	if i < 0 {
		return false
	}
	raw := got[:i]
	sig, err := base64.RawURLEncoding.DecodeString(got[i+1:])
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, g.stateKey)
	mac.Write([]byte(raw))
	return hmac.Equal(mac.Sum(nil), sig)
}

// AuthURL returns the provider URL to redirect the browser to.
func (g *GoogleOAuth) AuthURL(state string) string {
	return g.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// GoogleUser is the subset of the userinfo response the app needs.
type GoogleUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Exchange trades the callback code for a token and fetches the user profile.
func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	client := g.cfg.Client(ctx, tok)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if user.ID == "" {
		return nil, errors.New("userinfo response missing subject id")
	}
	return &user, nil
}
