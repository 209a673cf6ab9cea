package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	internal_auth "github.com/codepulse-cc/codepulse-app/internal/pkg/auth"
	"github.com/codepulse-cc/codepulse-app/internal/pkg/security"
	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
)

// fakeUserRepo 是用户仓储的内存实现。
type fakeUserRepo struct {
	byEmail     map[string]*model.User
	lastLoginAt *time.Time
	created     *model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, email, nickname, passwordHash string, groupID uint) (*model.User, error) {
	u := &model.User{
		ID:           uint(len(f.byEmail) + 1),
		Email:        email,
		Nickname:     nickname,
		PasswordHash: passwordHash,
		Status:       model.UserStatusActive,
		UserGroup:    &model.UserGroup{ID: groupID},
	}
	f.byEmail[email] = u
	f.created = u
	return u, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	f.lastLoginAt = &at
	return nil
}

// fakeTokenService 返回固定令牌。
type fakeTokenService struct {
	revoked []string
}

func (f *fakeTokenService) GenerateSessionTokens(ctx context.Context, user *model.User) (string, string, int64, error) {
	return "access", "refresh", 123, nil
}

func (f *fakeTokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, int64, error) {
	return "new-access", 456, nil
}

func (f *fakeTokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	f.revoked = append(f.revoked, refreshToken)
	return nil
}

func (f *fakeTokenService) ParseAccessToken(ctx context.Context, accessToken string) (*internal_auth.CustomClaims, error) {
	return nil, errors.New("not implemented")
}

func seededRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := security.HashPassword("Admin@123")
	if err != nil {
		t.Fatal(err)
	}
	return &fakeUserRepo{byEmail: map[string]*model.User{
		"admin@codepulse.com": {
			ID:           1,
			Email:        "admin@codepulse.com",
			Nickname:     "Admin",
			PasswordHash: hash,
			Status:       model.UserStatusActive,
			UserGroup:    &model.UserGroup{ID: model.UserGroupWriterID, Name: "Writer"},
		},
	}}
}

func TestLogin_Success(t *testing.T) {
	repo := seededRepo(t)
	svc := NewAuthService(repo, &fakeTokenService{})

	session, err := svc.Login(context.Background(), "admin@codepulse.com", "Admin@123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.AccessToken != "access" || session.RefreshToken != "refresh" {
		t.Errorf("会话令牌不符: %+v", session)
	}
	if session.Group != "Writer" {
		t.Errorf("Group = %q, want Writer", session.Group)
	}
	if repo.lastLoginAt == nil {
		t.Error("登录成功应更新最近登录时间")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(seededRepo(t), &fakeTokenService{})

	_, err := svc.Login(context.Background(), "admin@codepulse.com", "nope")
	if !errors.Is(err, constant.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(seededRepo(t), &fakeTokenService{})

	_, err := svc.Login(context.Background(), "nobody@codepulse.com", "Admin@123")
	if !errors.Is(err, constant.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_DisabledUser(t *testing.T) {
	repo := seededRepo(t)
	repo.byEmail["admin@codepulse.com"].Status = model.UserStatusDisabled
	svc := NewAuthService(repo, &fakeTokenService{})

	_, err := svc.Login(context.Background(), "admin@codepulse.com", "Admin@123")
	if !errors.Is(err, constant.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestRegister_CreatesReaderAccount(t *testing.T) {
	repo := seededRepo(t)
	svc := NewAuthService(repo, &fakeTokenService{})

	err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "reader@codepulse.com",
		Password: "Reader@123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if repo.created == nil || repo.created.UserGroup.ID != model.UserGroupReaderID {
		t.Errorf("注册用户应进入 Reader 组: %+v", repo.created)
	}
	if !security.CheckPasswordHash("Reader@123", repo.created.PasswordHash) {
		t.Error("落库密码应为可校验的哈希")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(seededRepo(t), &fakeTokenService{})

	err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "admin@codepulse.com",
		Password: "Admin@123",
	})
	if !errors.Is(err, constant.ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	tokenSvc := &fakeTokenService{}
	svc := NewAuthService(seededRepo(t), tokenSvc)

	if err := svc.Logout(context.Background(), "refresh"); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(tokenSvc.revoked) != 1 || tokenSvc.revoked[0] != "refresh" {
		t.Errorf("刷新令牌未被吊销: %v", tokenSvc.revoked)
	}
}
