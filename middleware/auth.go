package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "travelhub/database/repository/user"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates the bearer token and sets userID, email,
// isAdmin and accountType on the gin context. The resolved identity is cached
// in Redis keyed by token hash so the account lookup does not hit Mongo on
// every request.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()

		if session, err := utils.GetAuthSession(authCache, tokenHash); err == nil && session.UserID == userID {
			setIdentity(c, session.UserID, session.Email, session.IsAdmin, session.AccountType)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Warn("auth session cache read failed", zap.Error(err))
		}

		user, err := users.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve account"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			return
		}

		session := utils.AuthSession{
			UserID:      user.ID,
			Email:       user.Email,
			IsAdmin:     user.IsAdmin,
			AccountType: user.Type,
			CreatedAt:   time.Now(),
		}
		if err := utils.SaveAuthSession(authCache, tokenHash, session); err != nil {
			logger.Warn("auth session cache write failed", zap.Error(err))
		}

		setIdentity(c, user.ID, user.Email, user.IsAdmin, user.Type)
		c.Next()
	}
}

func setIdentity(c *gin.Context, userID, email string, isAdmin bool, accountType string) {
	c.Set("userID", userID)
	c.Set("email", email)
	c.Set("isAdmin", isAdmin)
	c.Set("accountType", accountType)
}
