package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/sessions"
)

var testJWTKey = []byte("0123456789abcdef0123456789abcdef")

func signedOnRequest(t *testing.T, sessionStore *sessions.CookieStore, claims UserJWT) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/x/applications/mine", nil)
	sess, err := sessionStore.Get(r, SessionName)
	if err != nil {
		t.Fatalf("expected session, got %v", err)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(testJWTKey)
	if err != nil {
		t.Fatalf("expected token to sign, got %v", err)
	}
	sess.Values["jwt"] = tokenString
	w := httptest.NewRecorder()
	if err := sess.Save(r, w); err != nil {
		t.Fatalf("expected session to save, got %v", err)
	}

	authed := httptest.NewRequest(http.MethodGet, "/x/applications/mine", nil)
	for _, cookie := range w.Result().Cookies() {
		authed.AddCookie(cookie)
	}
	return authed
}

func TestGetUserFromJWTRoundTrip(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("session-key"))
	claims := UserJWT{
		IsApplicant: true,
		UserID:      "applicant-1",
		Email:       "minsoo@example.com",
		CreatedAt:   time.Now(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	r := signedOnRequest(t, sessionStore, claims)

	got, err := GetUserFromJWT(r, sessionStore, testJWTKey)
	if err != nil {
		t.Fatalf("expected claims, got %v", err)
	}
	if got.UserID != "applicant-1" || got.Email != "minsoo@example.com" || !got.IsApplicant {
		t.Fatalf("unexpected claims: %+v", got)
	}
	if !IsSignedOn(r, sessionStore, testJWTKey) {
		t.Fatal("expected IsSignedOn to report true")
	}
}

func TestGetUserFromJWTRejectsExpiredToken(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("session-key"))
	claims := UserJWT{
		UserID: "applicant-1",
		Email:  "minsoo@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	r := signedOnRequest(t, sessionStore, claims)

	if _, err := GetUserFromJWT(r, sessionStore, testJWTKey); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
	if IsSignedOn(r, sessionStore, testJWTKey) {
		t.Fatal("expected IsSignedOn to report false")
	}
}

func TestUserAuthenticatedMiddleware(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("session-key"))
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	handler := UserAuthenticatedMiddleware(sessionStore, testJWTKey, next)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/x/applications/mine", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", w.Code)
	}

	claims := UserJWT{
		UserID: "applicant-1",
		Email:  "minsoo@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	w = httptest.NewRecorder()
	handler(w, signedOnRequest(t, sessionStore, claims))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with a valid session, got %d", w.Code)
	}
}
