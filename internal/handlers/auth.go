package handlers

import (
	"log"
	"net/http"
	"strings"

	"omnio_back_end/internal/models"
	"omnio_back_end/internal/store"
	"omnio_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Store *store.Store
}

func NewAuthHandler(s *store.Store) *AuthHandler {
	return &AuthHandler{Store: s}
}

type registerInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, nom et mot de passe (8 caractères min) requis"})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := h.Store.FindUserByEmail(ctx, email, "local")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "un compte existe déjà avec cet email"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}

	user, err := h.Store.CreateUser(ctx, &models.User{
		Email:    email,
		Name:     input.Name,
		Password: hash,
		Provider: "local",
	})
	if err != nil {
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}

	log.Println("✅ Nouvel utilisateur:", user.Email)
	c.JSON(http.StatusCreated, gin.H{"jwt": token, "user": user})
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email et mot de passe requis"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := h.Store.FindUserByEmail(c.Request.Context(), email, "local")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiants invalides"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiants invalides"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwt": token, "user": user})
}

// GET /api/auth/me — profil de l'utilisateur connecté
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "vous devez être connecté"})
		return
	}

	user, err := h.Store.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "utilisateur introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
