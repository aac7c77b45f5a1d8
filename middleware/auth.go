package middleware

import (
	"errors"
	"net/http"
	"strings"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Auth validates the bearer token and requires a live session record for
// it. Handlers behind this middleware can rely on user_id, user_name and
// token_id being set on the context.
func Auth(jwtSecret string, sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, tokenID, err := SessionFromRequest(c, jwtSecret, sessions)
		if err != nil || session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("user_name", session.UserName)
		c.Set("token_id", tokenID)
		c.Next()
	}
}

// SessionFromRequest extracts and verifies the request's bearer token,
// then resolves its session. Returns a nil session when the request
// carries no valid token. The token is read from the Authorization header,
// or from the token query parameter for websocket upgrades.
func SessionFromRequest(c *gin.Context, jwtSecret string, sessions *services.SessionStore) (*services.Session, string, error) {
	tokenString := ""
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	} else if query := c.Query("token"); query != "" {
		tokenString = query
	}
	if tokenString == "" {
		return nil, "", nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", errors.New("invalid token claims")
	}
	tokenID, ok := claims["jti"].(string)
	if !ok {
		return nil, "", errors.New("invalid token claims")
	}

	// A deleted session record means the token was logged out.
	session, err := sessions.Get(c.Request.Context(), tokenID)
	if err != nil {
		return nil, "", err
	}
	return session, tokenID, nil
}
