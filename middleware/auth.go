package middleware

import (
	"net/http"
	"strings"

	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userId"

// JWTAuth validates an HS256 bearer token and stores the caller's id under
// "userId" in the gin context. The id is read from the userId claim, falling
// back to sub.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "missing bearer token")
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !tok.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "invalid token")
			return
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "invalid claims")
			return
		}

		userID := utils.CoerceID(claims["userId"])
		if userID == 0 {
			userID = utils.CoerceID(claims["sub"])
		}
		if userID == 0 {
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "token has no user")
			return
		}

		SetUserID(c, userID)
		c.Next()
	}
}

func SetUserID(c *gin.Context, id uint) {
	c.Set(userIDKey, id)
}

// UserID returns the id JWTAuth resolved for this request.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
