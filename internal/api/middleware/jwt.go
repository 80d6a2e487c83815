package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/types"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token whose subject is the user id.
var GenerateToken = func(userID uint, username string, expireDuration time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	// Subject is authoritative; user_id is carried for older clients.
	if claims.Subject != "" {
		id, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			return nil, jwt.ErrTokenInvalidSubject
		}
		claims.UserID = uint(id)
	}
	if claims.UserID == 0 {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return claims, nil
}

// JWTAuthMiddleware validates Bearer token in Authorization header or cookie.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
				return
			}
			tokenStr = parts[1]
		} else {
			cookie, err := c.Cookie("token")
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required (header or cookie)"})
				return
			}
			tokenStr = cookie
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token: " + err.Error()})
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}
