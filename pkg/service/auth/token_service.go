package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/codepulse-cc/codepulse-app/internal/pkg/auth"
	"github.com/codepulse-cc/codepulse-app/pkg/config"
	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
	"github.com/codepulse-cc/codepulse-app/pkg/service/utility"
)

// refreshTokenTTL 与刷新令牌自身的 JWT 有效期保持一致。
const refreshTokenTTL = time.Hour * 24 * 30

// refreshTokenKeyPrefix 是刷新令牌在缓存中的键前缀，值为签发对象的用户公共 ID。
const refreshTokenKeyPrefix = "refresh_token:"

// TokenService 负责会话令牌的签发、刷新与吊销。
type TokenService interface {
	GenerateSessionTokens(ctx context.Context, user *model.User) (accessToken, refreshToken string, expiresAt int64, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (accessToken string, expiresAt int64, err error)
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
}

type tokenService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	cacheSvc utility.CacheService
}

// NewTokenService 构造函数
func NewTokenService(
	userRepo repository.UserRepository,
	cfg *config.Config,
	cacheSvc utility.CacheService,
) TokenService {
	return &tokenService{
		userRepo: userRepo,
		cfg:      cfg,
		cacheSvc: cacheSvc,
	}
}

func (s *tokenService) secret() ([]byte, error) {
	jwtSecret := s.cfg.GetString(config.KeyJWTSecret)
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWTSecret 未配置, 无法处理令牌")
	}
	return []byte(jwtSecret), nil
}

// GenerateSessionTokens 签发一对访问/刷新令牌，并把刷新令牌登记到缓存。
// 登出时从缓存删除该记录即完成吊销。
func (s *tokenService) GenerateSessionTokens(ctx context.Context, user *model.User) (string, string, int64, error) {
	jwtSecret, err := s.secret()
	if err != nil {
		return "", "", 0, err
	}

	accessToken, err := auth.GenerateToken(user.ID, user.UserGroup.ID, jwtSecret)
	if err != nil {
		return "", "", 0, err
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, jwtSecret)
	if err != nil {
		return "", "", 0, err
	}

	claims, err := auth.ParseToken(accessToken, jwtSecret)
	if err != nil {
		return "", "", 0, err
	}
	expiresAt := claims.ExpiresAt.Time.UnixMilli()

	publicUserID, err := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser)
	if err != nil {
		return "", "", 0, err
	}
	if err := s.cacheSvc.Set(ctx, refreshTokenKeyPrefix+refreshToken, publicUserID, refreshTokenTTL); err != nil {
		return "", "", 0, fmt.Errorf("登记刷新令牌失败: %w", err)
	}

	return accessToken, refreshToken, expiresAt, nil
}

// RefreshAccessToken 校验刷新令牌（签名 + 缓存登记状态）后重新签发访问令牌。
func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, int64, error) {
	jwtSecret, err := s.secret()
	if err != nil {
		return "", 0, err
	}

	claims, err := auth.ParseToken(refreshToken, jwtSecret)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", constant.ErrInvalidToken, err)
	}

	// 已被吊销（登出）的刷新令牌在缓存中不再有登记
	registered, err := s.cacheSvc.Get(ctx, refreshTokenKeyPrefix+refreshToken)
	if err != nil {
		return "", 0, fmt.Errorf("查询刷新令牌状态失败: %w", err)
	}
	if registered == "" {
		return "", 0, constant.ErrInvalidToken
	}

	internalUserID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		return "", 0, fmt.Errorf("解码公共用户ID失败: %w", err)
	}
	if entityType != idgen.EntityTypeUser {
		return "", 0, fmt.Errorf("令牌中的用户ID类型不匹配")
	}

	user, err := s.userRepo.FindByID(ctx, internalUserID)
	if err != nil || user == nil || user.Status != model.UserStatusActive {
		return "", 0, fmt.Errorf("用户不存在或状态异常")
	}

	accessToken, err := auth.GenerateToken(user.ID, user.UserGroup.ID, jwtSecret)
	if err != nil {
		return "", 0, err
	}

	newClaims, _ := auth.ParseToken(accessToken, jwtSecret)
	expiresAt := newClaims.ExpiresAt.Time.UnixMilli()
	return accessToken, expiresAt, nil
}

// RevokeRefreshToken 吊销刷新令牌（登出）。
func (s *tokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	return s.cacheSvc.Delete(ctx, refreshTokenKeyPrefix+refreshToken)
}

// ParseAccessToken 负责解析和验证 access token
func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	jwtSecret, err := s.secret()
	if err != nil {
		return nil, err
	}
	return auth.ParseToken(accessToken, jwtSecret)
}
