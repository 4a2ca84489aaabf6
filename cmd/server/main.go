package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"omnio_back_end/internal/config"
	"omnio_back_end/internal/database"
	"omnio_back_end/internal/handlers"
	"omnio_back_end/internal/routes"
	"omnio_back_end/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	database.EnsureIndexes()

	initOAuthProviders()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("FRONTEND_URL"), "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, store.New(database.MongoDB))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Omnio lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}

func initOAuthProviders() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️ SESSION_SECRET manquant, OAuth désactivé")
		return
	}

	cookieStore := sessions.NewCookieStore([]byte(sessionSecret))
	cookieStore.MaxAge(86400 * 30)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // true en prod derrière HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	gothic.Store = cookieStore

	// Le provider vient du chemin /api/auth/:provider, posé dans le
	// contexte par le handler
	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if p, ok := req.Context().Value(handlers.ProviderKey).(string); ok && p != "" {
			return p, nil
		}
		if p := req.URL.Query().Get("provider"); p != "" {
			return p, nil
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	var providers []goth.Provider

	if id, secret := os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, google.New(id, secret, baseURL+"/api/auth/google/callback"))
		log.Println("✅ Google OAuth activé")
	}
	if id, secret := os.Getenv("FACEBOOK_CLIENT_ID"), os.Getenv("FACEBOOK_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, facebook.New(id, secret, baseURL+"/api/auth/facebook/callback"))
		log.Println("✅ Facebook OAuth activé")
	}

	if len(providers) == 0 {
		log.Println("⚠️ Aucun provider OAuth configuré")
		return
	}

	goth.UseProviders(providers...)
	log.Printf("✅ %d OAuth provider(s) initialisé(s)", len(providers))
}
