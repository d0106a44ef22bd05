package controller

import (
	"errors"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/logger"
	"mindmate_backend/pkg/monitoring"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 上游失败时给前端的兜底话术，细节只进日志不出接口
const coachFallbackReply = "抱歉，教练暂时掉线了，请稍后再试。你已经迈出了重要的一步！"

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// @Summary 和激励教练对话
// @Description 发送一条消息给 AI 教练并返回回复，同一用户同时只允许一条请求在途
// @Tags 教练对话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body string true "用户消息"
// @Success 200 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Message string `json:"message" binding:"required,max=2000"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "message is required")
		return
	}

	reply, err := c.ChatService.Send(ctx.Request.Context(), claims.UserID, req.Message)
	if err != nil {
		if errors.Is(err, util.ErrChatInFlight) {
			monitoring.ChatCounter.WithLabelValues("in_flight").Inc()
			util.Error(ctx, http.StatusTooManyRequests, err.Error())
			return
		}
		monitoring.ChatCounter.WithLabelValues("error").Inc()
		logger.Log.Error("coach upstream failed",
			zap.Uint("user_id", claims.UserID),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, util.Response{
			Code:    http.StatusInternalServerError,
			Message: "coach unavailable",
			Data:    gin.H{"reply": coachFallbackReply},
		})
		return
	}

	monitoring.ChatCounter.WithLabelValues("ok").Inc()
	util.Success(ctx, gin.H{"reply": reply})
}

// @Summary 获取对话历史
// @Description 返回当前用户最近 30 条对话消息，时间升序
// @Tags 教练对话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/chat/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	messages, err := c.ChatService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"messages": messages})
}
