package controller

import (
	"errors"
	"fmt"
	"net/http"

	"studymate_backend/internal/model"
	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

type AuthController struct {
	AuthService *service.AuthService
	FrontendURL string
}

func NewAuthController(authService *service.AuthService, frontendURL string) *AuthController {
	return &AuthController{
		AuthService: authService,
		FrontendURL: frontendURL,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "registration payload"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, "email is already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "login payload"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, "invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// GoogleLogin godoc
// @Summary Start the Google OAuth flow
// @Tags auth
// @Success 307
// @Router /api/auth/google [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	state, err := c.AuthService.GenerateState()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect, c.AuthService.LoginURL(state))
}

// GoogleCallback godoc
// @Summary Complete the Google OAuth flow
// @Description Validates the state, exchanges the code and redirects to the
// @Description frontend with a signed token in the query string.
// @Tags auth
// @Success 307
// @Failure 400 {object} util.Response
// @Router /api/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	expected, err := ctx.Cookie(oauthStateCookie)
	if err != nil || expected == "" || ctx.Query("state") != expected {
		util.BadRequest(ctx, "invalid oauth state")
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		util.BadRequest(ctx, "missing authorization code")
		return
	}

	token, err := c.AuthService.ExchangeCode(ctx.Request.Context(), code)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s/auth/callback?token=%s", c.FrontendURL, token))
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce  json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Security BearerAuth
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
