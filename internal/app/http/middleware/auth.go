package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"omniplex-backend/config"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the caller's identity and puts uid/email/name/
// picture into the gin context. With the Firebase collaborator present it
// verifies provider ID tokens; without it, the app's own HMAC JWT (issued by
// the Google sign-in flow) is accepted instead.
func AuthMiddleware(fbClient *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		if fbClient != nil {
			verifyFirebaseToken(c, fbClient, tokenString)
			return
		}
		verifyAppJWT(c, tokenString)
	}
}

func verifyFirebaseToken(c *gin.Context, fbClient *fbauth.Client, tokenString string) {
	token, err := fbClient.VerifyIDToken(c.Request.Context(), tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("uid", token.UID)
	if email, ok := token.Claims["email"].(string); ok {
		c.Set("email", email)
	}
	if name, ok := token.Claims["name"].(string); ok {
		c.Set("name", name)
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		c.Set("picture", picture)
	}
	c.Next()
}

func verifyAppJWT(c *gin.Context, tokenString string) {
	jwtKey := []byte(config.JWT_SECRET)
	if len(jwtKey) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	if uid, ok := claims["uid"].(string); ok {
		c.Set("uid", uid)
	}
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if name, ok := claims["name"].(string); ok {
		c.Set("name", name)
	}
	if picture, ok := claims["picture"].(string); ok {
		c.Set("picture", picture)
	}
	c.Next()
}
