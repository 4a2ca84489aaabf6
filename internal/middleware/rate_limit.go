package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"omnio_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3
	APIMaxRequests      = 100 // par minute pour les endpoints généraux

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
	APICooldown      = 1 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		key := "login_attempts:" + input.Email
		cooldownKey := "login_cooldown:" + input.Email

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Compte bloqué pendant %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Login échoué : incrémenter ; réussi : réinitialiser
		if c.Writer.Status() == http.StatusUnauthorized {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, LoginCooldown)
		} else if c.Writer.Status() == http.StatusOK {
			database.Redis.Del(ctx, key)
			database.Redis.Del(ctx, cooldownKey)
		}
	}
}

// RegisterRateLimit limite les inscriptions par IP
func RegisterRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "register_attempts:" + ip
		cooldownKey := "register_cooldown:" + ip

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop d'inscriptions. Réessayez dans %d minutes", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= RegisterMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", RegisterCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop d'inscriptions. Réessayez dans %d minutes", int(RegisterCooldown.Minutes())),
				"retry_after": int(RegisterCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusCreated {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, RegisterCooldown)
		}
	}
}

// APIRateLimit limite le nombre de requêtes par IP (général)
func APIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "api_requests:" + ip

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= APIMaxRequests {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de requêtes, ralentissez",
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, APICooldown)
		pipe.Exec(ctx)

		c.Next()
	}
}
