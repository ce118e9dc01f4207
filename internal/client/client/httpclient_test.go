package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/sessionview/internal/client/models"
	"github.com/dmitrijs2005/sessionview/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is what the fake server saw for the last request.
type recorded struct {
	method    string
	path      string
	token     string
	requestID string
	body      map[string]any
}

func newTestServer(t *testing.T, status int, reply string) (*HTTPClient, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.token = r.Header.Get("authorization")
		rec.requestID = r.Header.Get("X-Request-Id")
		rec.body = nil
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			assert.NoError(t, json.Unmarshal(b, &rec.body))
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	return NewHTTPClient(srv.URL+"/", 0, logging.Nop()), rec
}

func TestIdentify_Success(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, `{"user_name":"alice","email":"alice@example.com","is_superuser":true}`)

	id, err := c.Identify(context.Background(), "tok-1")
	require.NoError(t, err)

	assert.Equal(t, models.Identity{UserName: "alice", Email: "alice@example.com", IsSuperuser: true}, id)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, PathIdentifyUser, rec.path)
	assert.Equal(t, "tok-1", rec.token, "token goes raw into the credential header")
	_, err = uuid.Parse(rec.requestID)
	assert.NoError(t, err, "every request carries a uuid request id")
}

func TestIdentify_ExpiredSession(t *testing.T) {
	c, _ := newTestServer(t, http.StatusUnauthorized, SessionExpiredMessage)

	_, err := c.Identify(context.Background(), "old")
	require.ErrorIs(t, err, ErrSessionExpired)

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Status)
}

func TestIdentify_OtherRejectionIsNotExpiry(t *testing.T) {
	c, _ := newTestServer(t, http.StatusUnauthorized, "Something go wrong.")

	_, err := c.Identify(context.Background(), "tok")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSessionExpired))
	assert.Equal(t, "Something go wrong.", Message(err))
}

func TestIdentify_BadJSON(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `not json`)

	_, err := c.Identify(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode identity")
}

func TestRegister_SendsBodyAndReturnsText(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, "Registration was successfully completed!")

	msg, err := c.Register(context.Background(), models.RegisterRequest{UserName: "bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "Registration was successfully completed!", msg)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, PathRegisterUser, rec.path)
	assert.Empty(t, rec.token)
	assert.Equal(t, map[string]any{"user_name": "bob", "email": "bob@example.com", "password": "pw"}, rec.body)
}

func TestRegister_FieldErrorVerbatim(t *testing.T) {
	c, _ := newTestServer(t, http.StatusUnauthorized, "The name is already in use.")

	_, err := c.Register(context.Background(), models.RegisterRequest{UserName: "bob"})
	require.Error(t, err)
	assert.Equal(t, "The name is already in use.", Message(err))
}

func TestSignIn(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		c, rec := newTestServer(t, http.StatusOK, `{"access_token":"jwt-123"}`)

		tok, err := c.SignIn(context.Background(), models.SignInRequest{UserName: "bob", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "jwt-123", tok)
		assert.Equal(t, PathSignInUser, rec.path)
		assert.Equal(t, map[string]any{"user_name": "bob", "password": "pw"}, rec.body)
	})

	t.Run("missing token", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusOK, `{}`)

		_, err := c.SignIn(context.Background(), models.SignInRequest{UserName: "bob", Password: "pw"})
		require.Error(t, err)
	})

	t.Run("rejected", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusUnauthorized, "Incorrect user name or password.")

		_, err := c.SignIn(context.Background(), models.SignInRequest{UserName: "bob", Password: "bad"})
		assert.Equal(t, "Incorrect user name or password.", Message(err))
	})
}

func TestUpdateProfile_NullsInactiveFields(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, "User data were successfully updated!")
	email := "new@example.com"

	msg, err := c.UpdateProfile(context.Background(), "tok", models.ProfilePatch{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "User data were successfully updated!", msg)
	assert.Equal(t, "tok", rec.token)
	assert.Equal(t, map[string]any{"edited_user_name": nil, "edited_email": "new@example.com", "edited_password": nil}, rec.body)
}

func TestUpdateProfile_Expired(t *testing.T) {
	c, _ := newTestServer(t, http.StatusUnauthorized, SessionExpiredMessage)

	_, err := c.UpdateProfile(context.Background(), "tok", models.ProfilePatch{})
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestListUsers(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, "<table><tr><td>alice</td></tr></table>")

	listing, err := c.ListUsers(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, "<table><tr><td>alice</td></tr></table>", listing)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, PathAllUsers, rec.path)
	assert.Equal(t, "tok", rec.token)
}

func TestChangeUserStatus(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, "User status was successfully changed.")
	uid := uuid.NewString()

	msg, err := c.ChangeUserStatus(context.Background(), "tok", uid)
	require.NoError(t, err)

	assert.Equal(t, "User status was successfully changed.", msg)
	assert.Equal(t, PathChangeUserStatus, rec.path)
	assert.Equal(t, map[string]any{"uid": uid}, rec.body)
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, 0, logging.Nop())
	_, err := c.ListUsers(context.Background(), "tok")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCanceledContext(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, "ok")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListUsers(ctx, "tok")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestServerError_EmptyBody(t *testing.T) {
	err := &ServerError{Status: 500}
	assert.Equal(t, "server returned status 500", err.Error())
	assert.Equal(t, "plain", Message(errors.New("plain")))
}
