package service

import (
	"context"
	"fmt"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	chatHistoryLimit  = 30
	chatInflightTTL   = 60 * time.Second
	chatInflightKeyFn = "chat:inflight:%d"
)

// ChatService 教练对话的编排层：单飞锁、消息落库、上游调用。
// 每个用户同一时刻只允许一条对话请求在途，避免重复扣费和乱序回复。
type ChatService struct {
	Coach       *CoachService
	MessageRepo *repository.MessageRepository
	Redis       *redis.Client
}

func NewChatService(coach *CoachService, messageRepo *repository.MessageRepository, redisClient *redis.Client) *ChatService {
	return &ChatService{Coach: coach, MessageRepo: messageRepo, Redis: redisClient}
}

// Send 处理一轮对话：持锁期间先落用户消息，再请求上游，成功后落回复。
// 上游失败时用户消息保留（对话历史如实记录），错误上抛由控制器兜底。
func (s *ChatService) Send(ctx context.Context, userID uint, text string) (string, error) {
	lockKey := fmt.Sprintf(chatInflightKeyFn, userID)
	ok, err := s.Redis.SetNX(ctx, lockKey, "1", chatInflightTTL).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", util.ErrChatInFlight
	}
	defer s.Redis.Del(context.Background(), lockKey)

	if err := s.MessageRepo.Create(&model.Message{
		UserID: userID,
		Role:   model.RoleMessageUser,
		Text:   text,
	}); err != nil {
		return "", err
	}

	reply, err := s.Coach.Chat(ctx, text)
	if err != nil {
		return "", err
	}

	if err := s.MessageRepo.Create(&model.Message{
		UserID: userID,
		Role:   model.RoleMessageAssistant,
		Text:   reply,
	}); err != nil {
		return "", err
	}
	return reply, nil
}

// History 返回最近 30 条消息，时间升序
func (s *ChatService) History(userID uint) ([]model.Message, error) {
	return s.MessageRepo.FindRecentByUser(userID, chatHistoryLimit)
}
