package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptestutil "github.com/psmphuket/portal/internal/testutils/http"
	kdb "github.com/psmphuket/portal/pkg/db"
	"github.com/psmphuket/portal/pkg/session"
)

var agent = &kdb.User{
	ID: "user-1", Name: "Nok", Email: "nok@psmphuket.com", Role: kdb.RoleAgent,
}

func TestIssueAndVerify(t *testing.T) {
	issuer := session.NewIssuer("secret", time.Hour)

	token, err := issuer.Issue(agent, time.Now())
	require.NoError(t, err)

	sess, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, kdb.RoleAgent, sess.Role)
	assert.Equal(t, "nok@psmphuket.com", sess.Email)
}

func TestVerifyRejections(t *testing.T) {
	issuer := session.NewIssuer("secret", time.Hour)

	t.Run("expired token", func(t *testing.T) {
		token, err := issuer.Issue(agent, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := session.NewIssuer("other-secret", time.Hour)
		token, err := other.Issue(agent, time.Now())
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})
}

func TestAllows(t *testing.T) {
	admin := &session.Session{Role: kdb.RoleAdmin}
	assert.True(t, admin.Allows(kdb.RoleAgent))
	assert.True(t, admin.Allows())

	agentSess := &session.Session{Role: kdb.RoleAgent}
	assert.True(t, agentSess.Allows(kdb.RoleAgent))
	assert.False(t, agentSess.Allows(kdb.RoleOwner))

	var anonymous *session.Session
	assert.False(t, anonymous.Allows(kdb.RoleAgent))
}

func TestMiddleware(t *testing.T) {
	issuer := session.NewIssuer("secret", time.Hour)
	e := echo.New()

	handler := func(c echo.Context) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, sess.UserID)
	}
	guarded := session.Resolve(issuer)(session.Require(kdb.RoleAgent)(handler))
	open := session.Resolve(issuer)(handler)

	t.Run("valid token reaches a guarded handler", func(t *testing.T) {
		token, err := issuer.Issue(agent, time.Now())
		require.NoError(t, err)

		ctx, rec := httptestutil.Get(e, "/", httptestutil.WithHeader("Authorization", "Bearer "+token))
		require.NoError(t, guarded(ctx))
		assert.Equal(t, "user-1", rec.Body.String())
	})

	t.Run("anonymous request is rejected by Require", func(t *testing.T) {
		ctx, _ := httptestutil.Get(e, "/")
		err := guarded(ctx)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("owner role cannot pass an agent gate", func(t *testing.T) {
		owner := &kdb.User{ID: "owner-1", Role: kdb.RoleOwner}
		token, err := issuer.Issue(owner, time.Now())
		require.NoError(t, err)

		ctx, _ := httptestutil.Get(e, "/", httptestutil.WithHeader("Authorization", "Bearer "+token))
		err = guarded(ctx)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("invalid token is rejected even on open routes", func(t *testing.T) {
		ctx, _ := httptestutil.Get(e, "/", httptestutil.WithHeader("Authorization", "Bearer bogus"))
		err := open(ctx)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("anonymous request passes open routes", func(t *testing.T) {
		ctx, rec := httptestutil.Get(e, "/")
		require.NoError(t, open(ctx))
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}
