package util

import (
	"mindmate_backend/internal/model"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Email:     "coach@example.com",
		Role:      model.RoleUser,
	}

	token, err := GenerateJWT(user, "test-secret-test-secret-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret-test-secret-test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "coach@example.com" || claims.Role != model.RoleUser {
		t.Errorf("claims = %+v, want userID=42 email=coach@example.com role=user", claims)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Email: "a@b.c"}
	token, err := GenerateJWT(user, "secret-one-secret-one-secret-one", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "secret-two-secret-two-secret-two"); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Email: "a@b.c"}
	token, err := GenerateJWT(user, "secret-one-secret-one-secret-one", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "secret-one-secret-one-secret-one"); err == nil {
		t.Error("expected error for expired token")
	}
}
