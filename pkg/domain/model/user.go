package model

import "time"

// 用户状态
const (
	UserStatusActive   = 1 // 正常
	UserStatusDisabled = 2 // 禁用
)

// 播种的用户组 ID，约定 1 为 Writer（可写），2 为 Reader（只读）。
const (
	UserGroupWriterID uint = 1
	UserGroupReaderID uint = 2
)

// User 是用户的核心领域模型。内部 ID 仅在服务内部流转，
// 对外暴露时统一转换为公共 ID。
type User struct {
	ID           uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string
	Nickname     string
	PasswordHash string
	Status       int
	LastLoginAt  *time.Time
	UserGroup    *UserGroup
}

// UserGroup 是用户组的核心领域模型。
type UserGroup struct {
	ID          uint
	Name        string
	Description string
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// RegisterRequest 定义了注册请求体，注册用户默认进入 Reader 组。
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nickname string `json:"nickname"`
}

// LoginRequest 定义了登录请求体
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 定义了登录成功后的会话信息
type LoginResponse struct {
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	Group        string `json:"group"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// RefreshTokenRequest 定义了刷新访问令牌的请求体
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse 定义了用户的标准 API 响应结构
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Group     string    `json:"group"`
	CreatedAt time.Time `json:"createdAt"`
}
