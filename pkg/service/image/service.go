package image

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/codepulse-cc/codepulse-app/internal/infra/storage"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"

	"github.com/google/uuid"
)

// Service 封装了博客图片的业务逻辑：二进制落盘 + 元数据入库。
type Service struct {
	repo    repository.ImageRepository
	store   *storage.LocalStore
	baseURL string
}

// NewService 是 Image Service 的构造函数。baseURL 用于拼接图片的访问地址。
func NewService(repo repository.ImageRepository, store *storage.LocalStore, baseURL string) *Service {
	return &Service{
		repo:    repo,
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// toAPIResponse 将图片领域模型转换为响应 DTO。
func (s *Service) toAPIResponse(img *model.Image) *model.ImageResponse {
	if img == nil {
		return nil
	}
	return &model.ImageResponse{
		ID:        img.ID,
		FileName:  img.FileName,
		Title:     img.Title,
		Extension: img.Extension,
		Size:      img.Size,
		URL:       img.URL,
		CreatedAt: img.CreatedAt,
	}
}

// Upload 处理图片上传：以随机文件名落盘，再记录元数据。
// 落盘成功但入库失败时回收磁盘文件，避免产生孤儿文件。
func (s *Service) Upload(ctx context.Context, fileHeader *multipart.FileHeader, title string) (*model.ImageResponse, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("无法打开上传文件: %w", err)
	}
	defer src.Close()

	extension := filepath.Ext(fileHeader.Filename)
	storedName := uuid.NewString() + extension

	size, err := s.store.Save(src, storedName)
	if err != nil {
		return nil, err
	}

	params := &model.CreateImageParams{
		FileName:  storedName,
		Title:     title,
		Extension: extension,
		Size:      size,
		URL:       fmt.Sprintf("%s/uploads/%s", s.baseURL, storedName),
	}

	created, err := s.repo.Create(ctx, params)
	if err != nil {
		if rmErr := s.store.Remove(storedName); rmErr != nil {
			return nil, fmt.Errorf("记录图片元数据失败: %w (回收磁盘文件同样失败: %v)", err, rmErr)
		}
		return nil, fmt.Errorf("记录图片元数据失败: %w", err)
	}

	return s.toAPIResponse(created), nil
}

// List 返回所有图片，最新的在前。
func (s *Service) List(ctx context.Context) ([]*model.ImageResponse, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.ImageResponse, len(images))
	for i, img := range images {
		responses[i] = s.toAPIResponse(img)
	}
	return responses, nil
}
