package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinelog/internal/domain"
	"cinelog/internal/pkg/response"
)

// Handler manages all HTTP interactions for accounts and authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes wires the credential endpoints; callers usually
// put these behind the auth rate limiter.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

// RegisterProfileRoutes wires the public profile lookup.
func (h *Handler) RegisterProfileRoutes(api *gin.RouterGroup) {
	api.GET("/users/:username", h.GetByUsername)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PUT("/profile", h.UpdateProfile)
	}
}

// Register creates a new account.
// @Summary		Register a new user
// @Description	Creates an account and returns a bearer token for it. Username and email must be unused.
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"username, email, password"
// @Success		201	{object}	map[string]interface{}	"token and user"
// @Failure		400	{object}	map[string]interface{}	"validation error"
// @Failure		409	{object}	map[string]interface{}	"username or email already taken"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email is already registered")
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  selfView(user),
	})
}

// Login authenticates by email and password.
// @Summary		Log in
// @Description	Returns a bearer token on success. Unknown email and wrong password are indistinguishable.
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"email, password"
// @Success		200	{object}	map[string]interface{}	"token and user"
// @Failure		401	{object}	map[string]interface{}	"invalid credentials"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  selfView(user),
	})
}

// GetMe returns the authenticated caller's own profile, email included.
// @Summary		Get own profile
// @Tags		Users
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/users/me [GET]
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": selfView(user)})
}

// UpdateProfile applies a partial bio/avatar update.
// @Summary		Update own profile
// @Tags		Users
// @Security	BearerAuth
// @Param		request	body	UpdateProfileRequest	true	"bio and/or avatar"
// @Success		200	{object}	map[string]interface{}
// @Router		/users/profile [PUT]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Bio or avatar too long")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": selfView(user)})
}

// GetByUsername returns a public profile, no email.
// @Summary		Get public profile
// @Tags		Users
// @Param		username	path	string	true	"username"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}
// @Router		/users/:username [GET]
func (h *Handler) GetByUsername(c *gin.Context) {
	profile, err := h.service.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": profile})
}

func selfView(u *domain.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"bio":      u.Bio,
		"avatar":   u.Avatar,
		"joinDate": u.CreatedAt,
	}
}
