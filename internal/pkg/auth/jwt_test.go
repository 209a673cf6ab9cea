package auth

import (
	"testing"

	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
)

var testSecret = []byte("test-secret")

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestGenerateAndParseToken(t *testing.T) {
	tokenStr, err := GenerateToken(7, 1, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(tokenStr, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		t.Fatalf("解码 UserID: %v", err)
	}
	if userID != 7 || entityType != idgen.EntityTypeUser {
		t.Errorf("UserID 解码结果 = (%d, %d), want (7, %d)", userID, entityType, idgen.EntityTypeUser)
	}

	groupID, entityType, err := idgen.DecodePublicID(claims.UserGroupID)
	if err != nil {
		t.Fatalf("解码 UserGroupID: %v", err)
	}
	if groupID != 1 || entityType != idgen.EntityTypeUserGroup {
		t.Errorf("UserGroupID 解码结果 = (%d, %d), want (1, %d)", groupID, entityType, idgen.EntityTypeUserGroup)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken(7, 1, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(tokenStr, []byte("other-secret")); err == nil {
		t.Error("错误密钥签名校验应失败")
	}
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	if _, err := GenerateToken(7, 1, nil); err == nil {
		t.Error("空密钥应返回错误")
	}
}
