package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrInvalidMagicToken  = errors.New("登录链接无效或已过期")
	ErrMagicLinkCooldown  = errors.New("发送过于频繁，请稍后再试")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrChatInFlight       = errors.New("another chat request is in flight")
	ErrInvalidMood        = errors.New("invalid mood value")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrChallengeOutOfSet  = errors.New("challenge index out of today's set")
	ErrMotivationLastOne  = errors.New("至少需要保留一个启用的激励短句")
	ErrMotivationDisabled = errors.New("该激励短句未启用")
	ErrMotivationNotFound = errors.New("未找到指定的激励短句")
)
