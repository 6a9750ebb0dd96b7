package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const profileHeader = "X-Profile-ID"

// ProfileID pins the client profile the local entitlement cache is scoped
// to — one profile id is to this service what one browser profile is to
// local storage. Clients without an id get a fresh one echoed back to keep.
func ProfileID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(profileHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("profile_id", id)
		c.Header(profileHeader, id)
		c.Next()
	}
}
