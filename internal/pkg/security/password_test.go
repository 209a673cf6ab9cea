package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Admin@123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Admin@123" {
		t.Fatal("哈希结果不应等于明文")
	}

	if !CheckPasswordHash("Admin@123", hash) {
		t.Error("正确密码应校验通过")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("错误密码不应校验通过")
	}
}
