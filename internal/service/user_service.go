package service

import (
	"context"
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"
	"mime/multipart"
	"path/filepath"
	"strings"

	"gorm.io/gorm"
)

// UserService 用户档案管理
type UserService struct {
	UserRepo  *repository.UserRepository
	StatsRepo *repository.StatsRepository
	Storage   *StorageService
}

func NewUserService(userRepo *repository.UserRepository, statsRepo *repository.StatsRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, StatsRepo: statsRepo, Storage: storage}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// UpdateProfile 更新展示名，空名不落库
func (s *UserService) UpdateProfile(userID uint, name string) (*model.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name != "" {
		user.Name = name
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// UploadAvatar 校验并保存头像，返回更新后的用户
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, fileHeader *multipart.FileHeader) (*model.User, error) {
	if fileHeader.Size > util.MaxAvatarSizeBytes {
		return nil, errors.New("avatar too large")
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, util.MimeImage) {
		return nil, errors.New("avatar must be an image")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	filename := AvatarFilename(userID, filepath.Ext(fileHeader.Filename))
	url, err := s.Storage.Upload(ctx, filename, file, fileHeader.Size, contentType)
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
