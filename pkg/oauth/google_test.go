package oauth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestService(rt roundTripFunc) *GoogleOAuthService {
	s := NewGoogleOAuthService(GoogleOAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/auth/google/callback",
	})
	s.httpClient = &http.Client{Transport: rt}
	return s
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewGoogleOAuthService(GoogleOAuthConfig{}).IsConfigured())
	assert.True(t, newTestService(nil).IsConfigured())
}

func TestGetAuthURLCarriesState(t *testing.T) {
	raw := newTestService(nil).GetAuthURL("state-123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "select_account", q.Get("prompt"))
	assert.Contains(t, q.Get("scope"), "email")
}

func TestExchangeCodeRejectsEmptyCode(t *testing.T) {
	_, err := newTestService(nil).ExchangeCode(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestExchangeCodeUsesTokenEndpoint(t *testing.T) {
	s := newTestService(func(r *http.Request) (*http.Response, error) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		return jsonResponse(http.StatusOK, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`), nil
	})

	token, err := s.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "at", token.AccessToken)
}

func TestGetUserInfo(t *testing.T) {
	s := newTestService(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, googleUserInfoURL, r.URL.String())
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		return jsonResponse(http.StatusOK, `{"id":"42","email":"owner@shop.pk","verified_email":true,"name":"Owner"}`), nil
	})

	info, err := s.GetUserInfo(context.Background(), &oauth2.Token{AccessToken: "at", TokenType: "Bearer"})
	require.NoError(t, err)
	assert.Equal(t, "owner@shop.pk", info.Email)
	assert.True(t, info.VerifiedEmail)
}

func TestGetUserInfoFailures(t *testing.T) {
	tests := []struct {
		name string
		rt   roundTripFunc
	}{
		{"upstream error status", func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusUnauthorized, `{"error":"invalid_token"}`), nil
		}},
		{"profile without email", func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"id":"42"}`), nil
		}},
		{"transport failure", func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: i/o timeout")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(tt.rt).GetUserInfo(context.Background(), &oauth2.Token{AccessToken: "at"})
			assert.ErrorIs(t, err, ErrFailedToGetUser)
		})
	}
}
