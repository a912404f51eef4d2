package middleware

import (
	"net/http"
	"strings"

	"petlify_server/internal/model"
	"petlify_server/pkg/errorx"
	"petlify_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key the verified principal is stored
// under.
const principalKey = "principal"

// JWTAuth verifies the bearer access token and stores the decoded
// principal on the context. Handlers pass it explicitly into service
// calls.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "malformed authorization header, expected Bearer token")
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "token expired or invalid, please login again")
			return
		}

		if claims.Subject != "access_token" {
			abortUnauthorized(c, "an access token is required for this endpoint")
			return
		}

		c.Set(principalKey, model.Principal{
			UserID:  claims.UserID,
			IsAdmin: claims.IsAdmin,
		})
		c.Next()
	}
}

// AdminOnly rejects non-admin principals at the routing layer. The
// admin services re-check the principal themselves; this is the outer
// gate on admin route groups.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal.UserID == "" {
			abortUnauthorized(c, "authentication required")
			return
		}
		if !principal.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": errorx.CodeForbidden,
				"msg":  "admin access required",
			})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the principal stored by JWTAuth, or the zero
// value when the route is unauthenticated.
func GetPrincipal(c *gin.Context) model.Principal {
	if v, ok := c.Get(principalKey); ok {
		if principal, ok := v.(model.Principal); ok {
			return principal
		}
	}
	return model.Principal{}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
	})
}
