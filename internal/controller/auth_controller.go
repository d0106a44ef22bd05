package controller

import (
	"errors"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary 请求魔法链接
// @Description 向指定邮箱发送一次性登录链接，60 秒内只允许请求一次
// @Tags 认证
// @Accept json
// @Produce json
// @Param email body string true "邮箱地址"
// @Success 200 {object} util.Response
// @Router /api/auth/magic-link [post]
func (c *AuthController) RequestMagicLink(ctx *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid email address")
		return
	}

	err := c.AuthService.RequestMagicLink(ctx.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, util.ErrMagicLinkCooldown) {
			util.Error(ctx, http.StatusTooManyRequests, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"sent": true})
}

// @Summary 验证魔法链接
// @Description 校验邮件中的一次性令牌，通过后签发 JWT
// @Tags 认证
// @Accept json
// @Produce json
// @Param email query string true "邮箱地址"
// @Param token query string true "一次性令牌"
// @Success 200 {object} util.Response
// @Router /api/auth/verify [get]
func (c *AuthController) VerifyMagicLink(ctx *gin.Context) {
	email := ctx.Query("email")
	token := ctx.Query("token")
	if email == "" || token == "" {
		util.BadRequest(ctx, "email and token are required")
		return
	}

	jwt, user, err := c.AuthService.VerifyMagicLink(ctx.Request.Context(), email, token)
	if err != nil {
		if errors.Is(err, util.ErrInvalidMagicToken) {
			util.Unauthorized(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": jwt,
		"user":  user,
	})
}
