// Package authgate is the placeholder session gate in front of the
// catalog. Credentials are injected at build time; the session token
// is a prefix-checked random value. This is not a security boundary;
// it keeps casual visitors out of a family documentation site,
// nothing more.
package authgate

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Build-injected credentials. Deployment overrides these via
// -ldflags "-X majasdoc/internal/authgate.authUser=... ...".
var (
	authUser = "__AUTH_USER__"
	authPass = "__AUTH_PASS__"
)

// CookieName is the session cookie carrying the token.
const CookieName = "majasdoc_session"

// tokenPrefix marks tokens minted by this gate.
const tokenPrefix = "r62_"

// Verify compares credentials against the build-injected constants.
func Verify(user, pass string) bool {
	return user == authUser && pass == authPass
}

// NewSessionToken mints a new session token.
func NewSessionToken() string {
	return tokenPrefix + uuid.NewString()
}

// ValidToken reports whether a token looks like one we minted. Only
// the prefix is checked, matching the placeholder nature of the gate.
func ValidToken(token string) bool {
	return strings.HasPrefix(token, tokenPrefix) && len(token) > len(tokenPrefix)
}

// Authenticated reports whether the request carries a valid session.
func Authenticated(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return ValidToken(c.Value)
}

// SetSession attaches a fresh session cookie to the response.
func SetSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    NewSessionToken(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// exempt paths reachable without a session.
var exempt = map[string]bool{
	"/healthz":    true,
	"/api/login":  true,
	"/login.html": true,
}

// Middleware enforces the gate: unauthenticated API requests get a
// 401, unauthenticated page requests are redirected to the login
// surface.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if exempt[r.URL.Path] || Authenticated(r) {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
			return
		}
		http.Redirect(w, r, "/login.html", http.StatusFound)
	})
}
