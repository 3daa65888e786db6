package utils

import (
	"testing"
)

// TestFormatBP 测试血压展示格式
func TestFormatBP(t *testing.T) {
	if got := FormatBP(120, 80); got != "120/80" {
		t.Errorf("期望 120/80,实际 %s", got)
	}
	if got := FormatBP(140, 90); got != "140/90" {
		t.Errorf("期望 140/90,实际 %s", got)
	}
}

// TestIsEmpty 测试空字符串判断
func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("空字符串应判定为空")
	}
	if IsEmpty("abc") {
		t.Error("非空字符串不应判定为空")
	}
}

// TestTokenRoundTrip 测试令牌生成和解析
func TestTokenRoundTrip(t *testing.T) {
	InitJWTSecret("test-secret")

	token, err := GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("令牌声明不符: %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Errorf("令牌类型期望 access,实际 %s", claims.TokenType)
	}
}

// TestParseTokenInvalid 测试非法令牌解析失败
func TestParseTokenInvalid(t *testing.T) {
	InitJWTSecret("test-secret")

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("非法令牌应解析失败")
	}
}

// TestGenerateRandomString 测试随机字符串长度
func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(16)
	if err != nil {
		t.Fatalf("生成随机字符串失败: %v", err)
	}
	// 16字节十六进制编码后为32个字符
	if len(s) != 32 {
		t.Errorf("长度期望 32,实际 %d", len(s))
	}
}
