package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName lets the back-office UI authenticate without an Authorization header.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
