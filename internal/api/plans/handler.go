package plans

import (
	"net/http"

	"omniplex-backend/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// ListPlans serves the static catalog the pricing page renders. The free
// plan is implicit — it is the absence of a subscription record.
func ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, plans.All())
}
