package service

import (
	"errors"
	"strings"
	"time"

	"github.com/shiptrack-api/internal/config"
	"github.com/shiptrack-api/internal/logger"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 认证服务
// 管理端使用单一通行密钥换取 Bearer Token
type AuthService struct {
	cfg          *config.Config
	loginLogRepo repository.LoginLogRepository
	passkeyHash  string
}

// NewAuthService 创建认证服务实例
// 优先使用配置中的 bcrypt 散列；仅配置明文时启动时散列一次
func NewAuthService(cfg *config.Config, loginLogRepo repository.LoginLogRepository) *AuthService {
	s := &AuthService{
		cfg:          cfg,
		loginLogRepo: loginLogRepo,
	}
	if cfg != nil {
		if hash := strings.TrimSpace(cfg.Auth.PasskeyHash); hash != "" {
			s.passkeyHash = hash
		} else if passkey := strings.TrimSpace(cfg.Auth.Passkey); passkey != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(passkey), bcrypt.DefaultCost)
			if err == nil {
				s.passkeyHash = string(hashed)
			} else {
				logger.Errorw("passkey_hash_failed", "error", err)
			}
		}
	}
	if s.passkeyHash == "" {
		logger.Warnw("admin_passkey_not_configured_login_disabled")
	}
	return s
}

// VerifyPasskey 验证通行密钥
func (s *AuthService) VerifyPasskey(passkey string) error {
	if s.passkeyHash == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passkeyHash), []byte(passkey)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// JWTClaims JWT 声明
type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT 生成管理端 Token
func (s *AuthService) GenerateJWT() (string, time.Time, error) {
	expireHours := 24
	if s.cfg != nil && s.cfg.JWT.ExpireHours > 0 {
		expireHours = s.cfg.JWT.ExpireHours
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)

	claims := JWTClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析管理端 Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("无效的 token")
}

// Login 管理端登录；失败与成功均写入登录日志
func (s *AuthService) Login(passkey, ip, userAgent string) (string, time.Time, error) {
	if err := s.VerifyPasskey(passkey); err != nil {
		s.recordLogin(ip, userAgent, false, "invalid passkey")
		return "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT()
	if err != nil {
		s.recordLogin(ip, userAgent, false, "token generation failed")
		return "", time.Time{}, err
	}

	s.recordLogin(ip, userAgent, true, "")
	return token, expiresAt, nil
}

func (s *AuthService) recordLogin(ip, userAgent string, success bool, reason string) {
	if s.loginLogRepo == nil {
		return
	}
	entry := &models.AdminLoginLog{
		IP:        strings.TrimSpace(ip),
		UserAgent: userAgent,
		Success:   success,
		Reason:    reason,
	}
	if err := s.loginLogRepo.Create(entry); err != nil {
		logger.Warnw("login_log_write_failed", "error", err, "ip", ip)
	}
}

// ListLoginLogs 查询登录日志
func (s *AuthService) ListLoginLogs(filter repository.LoginLogListFilter) ([]models.AdminLoginLog, int64, error) {
	return s.loginLogRepo.List(filter)
}
