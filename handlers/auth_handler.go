package handlers

import (
	"net/http"

	"dmscreen/middleware"
	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *services.SessionStore
	jwtSecret   string
}

func NewAuthHandler(authService *services.AuthService, sessions *services.SessionStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		jwtSecret:   jwtSecret,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
	Redirect string `json:"redirect"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Redirect string `json:"redirect"`
}

func refer(redirect string) string {
	return "/" + redirect
}

// Register creates the account and immediately logs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(req.Name, req.Password, req.Email)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"success": false,
			"error":   err.Error(),
			"user":    nil,
			"refer":   refer(req.Redirect),
		})
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"error":   "",
		"user":    user,
		"token":   token,
		"refer":   refer(req.Redirect),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"user":  nil,
			"error": err.Error(),
			"refer": refer(req.Redirect),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
		"refer": refer(req.Redirect),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.MustGet("token_id").(string)
	if err := h.authService.Logout(c.Request.Context(), tokenID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session reports the logged-in user's name, or an empty name for
// anonymous callers. Public route.
func (h *AuthHandler) Session(c *gin.Context) {
	name := ""
	session, _, err := middleware.SessionFromRequest(c, h.jwtSecret, h.sessions)
	if err == nil && session != nil {
		name = session.UserName
	}
	c.JSON(http.StatusOK, gin.H{"name": name})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		c.JSON(statusForError(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "error": ""})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
		Code     string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ResetPassword(req.Code, req.Password); err != nil {
		c.JSON(statusForError(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "error": ""})
}
