package service

import (
	"context"
	"fmt"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/logger"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	magicTokenTTL     = 15 * time.Minute
	magicLinkCooldown = 60 * time.Second
)

// AuthService 魔法链接登录：无密码，一次性 token 经邮件送达。
// token 以 bcrypt 哈希暂存 Redis，验证成功即消费。
type AuthService struct {
	UserRepo  *repository.UserRepository
	StatsRepo *repository.StatsRepository
	Mail      *MailService
	Redis     *redis.Client
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, statsRepo *repository.StatsRepository, mail *MailService, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		StatsRepo: statsRepo,
		Mail:      mail,
		Redis:     rdb,
		Cfg:       cfg,
	}
}

func magicTokenKey(email string) string {
	return "magiclink:token:" + email
}

func magicCooldownKey(email string) string {
	return "magiclink:cooldown:" + email
}

// RequestMagicLink 生成一次性登录 token 并发送邮件。
// 同一邮箱在冷却期内重复请求会被拒绝。
func (s *AuthService) RequestMagicLink(ctx context.Context, email string) error {
	ok, err := s.Redis.SetNX(ctx, magicCooldownKey(email), "1", magicLinkCooldown).Result()
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrMagicLinkCooldown
	}

	token := uuid.New().String()
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.Redis.Set(ctx, magicTokenKey(email), string(hash), magicTokenTTL).Err(); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/auth/verify?email=%s&token=%s",
		s.Cfg.Server.BaseURL, url.QueryEscape(email), url.QueryEscape(token))

	return s.Mail.SendMagicLink(email, link)
}

// VerifyMagicLink 校验并消费 token，惰性建档后签发 JWT。
// 统计行创建失败不阻断登录，留待下次会话补建。
func (s *AuthService) VerifyMagicLink(ctx context.Context, email, token string) (string, *model.User, error) {
	hash, err := s.Redis.Get(ctx, magicTokenKey(email)).Result()
	if err != nil {
		return "", nil, util.ErrInvalidMagicToken
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
		return "", nil, util.ErrInvalidMagicToken
	}

	// 一次性消费，同一链接不可重放
	s.Redis.Del(ctx, magicTokenKey(email))

	user, err := s.UserRepo.FirstOrCreateByEmail(email)
	if err != nil {
		return "", nil, err
	}

	if _, err := s.StatsRepo.EnsureRow(user.ID); err != nil {
		logger.Log.Warn("failed to ensure stats row on login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to update last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	jwt, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return jwt, user, nil
}
