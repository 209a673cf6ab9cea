package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/codepulse-cc/codepulse-app/internal/pkg/security"
	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
)

// AuthService 定义了认证授权相关的业务逻辑接口
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
	Register(ctx context.Context, req *model.RegisterRequest) error
	Refresh(ctx context.Context, refreshToken string) (accessToken string, expiresAt int64, err error)
	Logout(ctx context.Context, refreshToken string) error
}

// authService 是 AuthService 接口的实现
type authService struct {
	userRepo repository.UserRepository
	tokenSvc TokenService
}

// NewAuthService 是 authService 的构造函数
func NewAuthService(userRepo repository.UserRepository, tokenSvc TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// Login 校验邮箱与密码，签发会话令牌并更新最近登录时间。
func (s *authService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, constant.ErrInvalidCredentials
	}

	if !security.CheckPasswordHash(password, user.PasswordHash) {
		return nil, constant.ErrInvalidCredentials
	}

	if user.Status != model.UserStatusActive {
		return nil, constant.ErrForbidden
	}

	accessToken, refreshToken, expiresAt, err := s.tokenSvc.GenerateSessionTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("生成会话令牌失败: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("更新最近登录时间失败: %w", err)
	}

	resp := &model.LoginResponse{
		Email:        user.Email,
		Nickname:     user.Nickname,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}
	if user.UserGroup != nil {
		resp.Group = user.UserGroup.Name
	}
	return resp, nil
}

// Register 创建一个 Reader 组的新用户。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("检查邮箱是否存在失败: %w", err)
	}
	if exists {
		return constant.ErrEmailExists
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Email
	}

	if _, err := s.userRepo.Create(ctx, req.Email, nickname, passwordHash, model.UserGroupReaderID); err != nil {
		return err
	}
	return nil
}

// Refresh 用刷新令牌换取新的访问令牌。
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, int64, error) {
	return s.tokenSvc.RefreshAccessToken(ctx, refreshToken)
}

// Logout 吊销刷新令牌，结束会话。
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenSvc.RevokeRefreshToken(ctx, refreshToken)
}
