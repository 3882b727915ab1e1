package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shiptrack-api/internal/config"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T, passkey string) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminLoginLog{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.Auth.Passkey = passkey
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 1
	return NewAuthService(cfg, repository.NewLoginLogRepository(db)), db
}

func TestAuthServiceLoginSuccessIssuesToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t, "open-sesame")

	token, expiresAt, err := svc.Login("open-sesame", "203.0.113.9", "go-test")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("expected token and expiry, got token=%q expires=%v", token, expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	var entry models.AdminLoginLog
	if err := db.Order("id desc").First(&entry).Error; err != nil {
		t.Fatalf("read login log failed: %v", err)
	}
	if !entry.Success || entry.IP != "203.0.113.9" {
		t.Fatalf("unexpected login log: %+v", entry)
	}
}

func TestAuthServiceLoginWrongPasskey(t *testing.T) {
	svc, db := setupAuthServiceTest(t, "open-sesame")

	if _, _, err := svc.Login("wrong", "198.51.100.7", "go-test"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	var entry models.AdminLoginLog
	if err := db.Order("id desc").First(&entry).Error; err != nil {
		t.Fatalf("read login log failed: %v", err)
	}
	if entry.Success {
		t.Fatalf("expected failed login log, got %+v", entry)
	}
}

func TestAuthServiceLoginDisabledWithoutPasskey(t *testing.T) {
	svc, _ := setupAuthServiceTest(t, "")

	if _, _, err := svc.Login("anything", "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials when passkey unset, got %v", err)
	}
}

func TestAuthServiceParseRejectsTamperedToken(t *testing.T) {
	svc, _ := setupAuthServiceTest(t, "open-sesame")

	token, _, err := svc.Login("open-sesame", "", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatalf("expected tampered token to fail parsing")
	}
}
