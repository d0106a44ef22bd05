package controller

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	CheckinService *service.CheckinService
}

func NewCheckinController(checkinService *service.CheckinService) *CheckinController {
	return &CheckinController{CheckinService: checkinService}
}

func statsPayload(stats *model.UserStats) gin.H {
	return gin.H{
		"ok":             true,
		"current_streak": stats.CurrentStreak,
		"longest_streak": stats.LongestStreak,
		"coins":          stats.Coins,
		"last_checkin":   stats.LastCheckin,
	}
}

// @Summary 每日签到
// @Description 执行当日签到：推进连胜、发放金币。同一天重复签到返回 400
// @Tags 签到
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/checkin [post]
func (c *CheckinController) DailyCheckin(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.CheckinService.PerformDailyCheckin(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrAlreadyCheckedIn) {
			monitoring.CheckinCounter.WithLabelValues("duplicate").Inc()
			util.BadRequest(ctx, err.Error())
			return
		}
		monitoring.CheckinCounter.WithLabelValues("error").Inc()
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.CheckinCounter.WithLabelValues("ok").Inc()
	util.Success(ctx, statsPayload(stats))
}

// @Summary 获取当前用户的签到统计
// @Description 返回当前用户的连胜和金币，统计行不存在时惰性创建
// @Tags 签到
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/me [get]
func (c *CheckinController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.CheckinService.GetStats(claims.UserID)
	if err != nil {
		// 建档失败不致命，返回空统计让前端正常渲染
		util.Success(ctx, gin.H{})
		return
	}

	util.Success(ctx, statsPayload(stats))
}
