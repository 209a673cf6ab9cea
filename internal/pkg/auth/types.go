package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索用户信息结构体的键。
const ClaimsKey = "user_claims"

// CustomClaims 定义了 JWT 的自定义 Claims 结构体。
// UserID 和 UserGroupID 存储的是其公共 ID 字符串表示。
type CustomClaims struct {
	UserID      string `json:"user_id"`       // 用户公共ID
	UserGroupID string `json:"user_group_id"` // 用户组公共ID
	jwt.RegisteredClaims
}
