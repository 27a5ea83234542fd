package sessions

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/hqvu/furnistore/app/configs"
)

const (
	SessionCookieName  = "cart_session"
	sessionIDCookieKey = "session_id"
)

var (
	env   = configs.LoadENV
	Store = sessions.NewCookieStore([]byte(env.SessionKey))
)

func init() {
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   env.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
}

// GetSessionID returns the guest session identifier from the cookie, or
// "" when the visitor has no cart session yet. It never creates one.
func GetSessionID(r *http.Request) string {
	session, err := Store.Get(r, SessionCookieName)
	if err != nil || session == nil {
		return ""
	}
	if id, ok := session.Values[sessionIDCookieKey].(string); ok {
		return id
	}
	return ""
}

// EnsureSessionID returns the existing guest session identifier or mints
// a new one and sets the cookie. Called on the first cart mutation by an
// unauthenticated visitor.
func EnsureSessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := Store.Get(r, SessionCookieName)
	if err != nil && session == nil {
		return "", err
	}

	if id, ok := session.Values[sessionIDCookieKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.New().String()
	session.Values[sessionIDCookieKey] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// ClearSessionID drops the guest session cookie, used after a guest cart
// has been merged into a user cart.
func ClearSessionID(w http.ResponseWriter, r *http.Request) error {
	session, err := Store.Get(r, SessionCookieName)
	if err != nil && session == nil {
		return err
	}
	delete(session.Values, sessionIDCookieKey)
	return session.Save(r, w)
}
