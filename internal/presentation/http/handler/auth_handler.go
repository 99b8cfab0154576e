package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/shopledger-api/pkg/oauth"
)

const oauthStateCookie = "oauth_state"

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	google      *oauth.GoogleOAuthService
}

// NewAuthHandler creates a new auth handler. google may be nil.
func NewAuthHandler(authService *service.AuthService, google *oauth.GoogleOAuthService) *AuthHandler {
	return &AuthHandler{authService: authService, google: google}
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"phone":       u.Phone,
		"role":        u.Role,
		"shop_id":     u.ShopID,
		"shop":        u.Shop,
		"permissions": u.Role.Permissions(),
	}
}

func tokenPayload(output *service.LoginOutput) gin.H {
	return gin.H{
		"user":          userPayload(output.User),
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	}
}

// Register handles shop registration
// @Summary Register shop
// @Description Create a shop and its owner account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RegisterShopRequest true "Registration data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.RegisterShop(c.Request.Context(), &service.RegisterShopInput{
		ShopName:    req.ShopName,
		ShopPhone:   req.ShopPhone,
		ShopAddress: req.ShopAddress,
		OwnerName:   req.OwnerName,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shop registered successfully", tokenPayload(output))
}

// Login handles user login
// @Summary Login
// @Description Authenticate user and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", tokenPayload(output))
}

// RefreshToken handles token refresh
// @Summary Refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", tokenPayload(output))
}

// GetProfile returns the authenticated user
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.GetCurrentUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile retrieved successfully", userPayload(user))
}

// ChangePassword handles password change
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), &service.ChangePasswordInput{
		UserID:          GetUserID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Password changed successfully", nil)
}

// AddWorker creates a counter worker in the current shop
// @Summary Add worker
// @Tags shop
// @Accept json
// @Produce json
// @Param request body request.AddWorkerRequest true "Worker account"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /shop/workers [post]
func (h *AuthHandler) AddWorker(c *gin.Context) {
	var req request.AddWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	user, err := h.authService.AddWorker(c.Request.Context(), actor, shopID, &service.AddWorkerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Worker added successfully", userPayload(user))
}

// ListStaff lists the accounts of the current shop
func (h *AuthHandler) ListStaff(c *gin.Context) {
	actor, shopID := scope(c)

	users, err := h.authService.ListStaff(c.Request.Context(), actor, shopID)
	if err != nil {
		response.Error(c, err)
		return
	}
	staff := make([]gin.H, len(users))
	for i := range users {
		staff[i] = userPayload(&users[i])
	}
	response.OK(c, "Staff retrieved successfully", staff)
}

// GoogleAuth redirects to the Google consent screen
// @Summary Google sign-in
// @Tags auth
// @Router /auth/google [get]
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	if h.google == nil || !h.google.IsConfigured() {
		response.BadRequest(c, oauth.ErrOAuthNotConfigured.Error())
		return
	}

	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusTemporaryRedirect, h.google.GetAuthURL(state))
}

// GoogleCallback completes Google sign-in and hands the tokens to the frontend
// @Summary Google sign-in callback
// @Tags auth
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.google == nil || !h.google.IsConfigured() {
		response.BadRequest(c, oauth.ErrOAuthNotConfigured.Error())
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	if err != nil || expected == "" || c.Query("state") != expected {
		h.redirectWithError(c, oauth.ErrInvalidState.Error())
		return
	}

	output, err := h.authService.GoogleLogin(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.redirectWithError(c, err.Error())
		return
	}

	q := url.Values{}
	q.Set("access_token", output.AccessToken)
	q.Set("refresh_token", output.RefreshToken)
	c.Redirect(http.StatusTemporaryRedirect, h.google.GetFrontendSuccessURL()+"#"+q.Encode())
}

func (h *AuthHandler) redirectWithError(c *gin.Context, message string) {
	q := url.Values{}
	q.Set("error", message)
	c.Redirect(http.StatusTemporaryRedirect, h.google.GetFrontendErrorURL()+"?"+q.Encode())
}
