package controller

import (
	"errors"
	"mindmate_backend/internal/ledger"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EngagementController struct {
	EngagementService *service.EngagementService
}

func NewEngagementController(engagementService *service.EngagementService) *EngagementController {
	return &EngagementController{EngagementService: engagementService}
}

// dateOrToday 取请求里的日期，缺省用今天，格式不对返回 false
func dateOrToday(date string) (string, bool) {
	if date == "" {
		return util.TodayKey(), true
	}
	if !util.ValidDateKey(date) {
		return "", false
	}
	return date, true
}

// @Summary 打开当日会话
// @Description 记录一次当日打开，按日历日间隔推进连胜并发放每日积分（每天一次）
// @Tags 激励账本
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/session/open [post]
func (c *EngagementController) OpenSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Date string `json:"date"`
	}
	ctx.ShouldBindJSON(&req)
	date, ok := dateOrToday(req.Date)
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidDate.Error())
		return
	}

	result, err := c.EngagementService.OpenSession(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 记录当日心情
// @Description 保存当日心情并发放心情积分
// @Tags 激励账本
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mood body string true "心情取值 happy/okay/tired/sad"
// @Success 200 {object} util.Response
// @Router /api/mood [post]
func (c *EngagementController) SetMood(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Date string `json:"date"`
		Mood string `json:"mood" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "mood is required")
		return
	}
	date, ok := dateOrToday(req.Date)
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidDate.Error())
		return
	}

	eng, err := c.EngagementService.SetMood(claims.UserID, date, ledger.Mood(req.Mood))
	if err != nil {
		if errors.Is(err, util.ErrInvalidMood) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"streak": eng.Streak,
		"points": eng.Points,
	})
}

// @Summary 保存当日日记
// @Description 保存当日日记（覆盖写入）并发放日记积分，内容会做 HTML 清洗
// @Tags 激励账本
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param text body string true "日记内容"
// @Success 200 {object} util.Response
// @Router /api/journal [put]
func (c *EngagementController) SaveJournal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Date string `json:"date"`
		Text string `json:"text"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}
	date, ok := dateOrToday(req.Date)
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidDate.Error())
		return
	}

	eng, err := c.EngagementService.SaveJournal(claims.UserID, date, req.Text)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"streak": eng.Streak,
		"points": eng.Points,
	})
}

// @Summary 读取某日日记
// @Description 返回指定日期的日记内容，没有记录时返回空串
// @Tags 激励账本
// @Produce json
// @Security BearerAuth
// @Param date query string false "日期 YYYY-MM-DD，缺省为今天"
// @Success 200 {object} util.Response
// @Router /api/journal [get]
func (c *EngagementController) GetJournal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	date, ok := dateOrToday(ctx.Query("date"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidDate.Error())
		return
	}

	text, err := c.EngagementService.GetJournal(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"date": date,
		"text": text,
	})
}

// @Summary 获取当日挑战
// @Description 返回指定日期固定分配的三项挑战及完成情况
// @Tags 激励账本
// @Produce json
// @Security BearerAuth
// @Param date query string false "日期 YYYY-MM-DD，缺省为今天"
// @Success 200 {object} util.Response
// @Router /api/challenges [get]
func (c *EngagementController) GetChallenges(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	date, ok := dateOrToday(ctx.Query("date"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidDate.Error())
		return
	}

	day, err := c.EngagementService.GetDayChallenges(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, day)
}

// @Summary 切换挑战完成状态
// @Description 翻转当日第 index 项挑战的完成状态并增减积分，积分不会降到 0 以下
// @Tags 激励账本
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "挑战序号 0-2"
// @Success 200 {object} util.Response
// @Router /api/challenges/{index}/toggle [post]
func (c *EngagementController) ToggleChallenge(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, util.ErrChallengeOutOfSet.Error())
		return
	}

	var req struct {
		Date string `json:"date"`
	}
	ctx.ShouldBindJSON(&req)
	date, ok := dateOrToday(req.Date)
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidDate.Error())
		return
	}

	result, err := c.EngagementService.ToggleChallenge(claims.UserID, date, index)
	if err != nil {
		if errors.Is(err, util.ErrChallengeOutOfSet) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
