package billing

import (
	"net/http"

	"omniplex-backend/database"
	"omniplex-backend/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

func GetPaymentHistory(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if database.DB == nil {
		c.JSON(http.StatusOK, []billing.Payment{})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
