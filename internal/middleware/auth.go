package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
	"estatedesk/internal/tokenstore"
)

// Context keys set by the auth middleware.
const (
	UserIDKey  = "userID"
	SessionKey = "session"
)

// CookieName is the cookie carrying the access token.
const CookieName = "accessToken"

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Authenticator issues, checks and revokes session tokens. A token is valid
// only while its JWT verifies and it is present in the token store.
type Authenticator struct {
	secret       []byte
	store        *tokenstore.Store
	secureCookie bool
}

// NewAuthenticator creates an Authenticator signing tokens with secret.
// Cookies are marked Secure when secureCookie is set.
func NewAuthenticator(secret string, store *tokenstore.Store, secureCookie bool) *Authenticator {
	return &Authenticator{secret: []byte(secret), store: store, secureCookie: secureCookie}
}

// Issue signs a token for user and records it in the token store.
func (a *Authenticator) Issue(ctx context.Context, user *models.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.store.TTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID,
			ID:        fmt.Sprintf("%d", now.UnixNano()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", err
	}

	session := tokenstore.Session{UserID: user.ID, Email: user.Email, Name: user.Name}
	if err := a.store.SetToken(ctx, token, session); err != nil {
		return "", err
	}
	return token, nil
}

// Revoke removes token from the store.
func (a *Authenticator) Revoke(ctx context.Context, token string) error {
	return a.store.DeleteToken(ctx, token)
}

// Parse verifies the token signature and expiry.
func (a *Authenticator) Parse(token string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// SetCookie writes the access token cookie with the store TTL as max age.
func (a *Authenticator) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(a.store.TTL().Seconds()), "/", "", a.secureCookie, true)
}

// ClearCookie expires the access token cookie.
func (a *Authenticator) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", a.secureCookie, true)
}

// Middleware requires a valid, stored access token cookie and puts the
// session on the context.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			abortWithError(c, apperrors.ErrNoToken)
			return
		}

		if _, err := a.Parse(token); err != nil {
			a.ClearCookie(c)
			abortWithError(c, apperrors.WithMessage(apperrors.ErrForbidden, "Invalid token: "+err.Error()))
			return
		}

		session, err := a.store.GetToken(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
		if session == nil {
			abortWithError(c, apperrors.ErrTokenNotInStore)
			return
		}

		c.Set(UserIDKey, session.UserID)
		c.Set(SessionKey, *session)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
