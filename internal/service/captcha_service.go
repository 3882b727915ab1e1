package service

import (
	"strings"
	"sync"
	"time"

	"github.com/shiptrack-api/internal/config"

	"github.com/mojocn/base64Captcha"
)

// 验证码场景
const (
	CaptchaSceneContact = "contact"
)

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 验证码服务
// 按场景开关决定是否需要验证码；仅支持图片验证码
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu         sync.Mutex
	imageStore base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Required 判断场景是否需要验证码
func (s *CaptchaService) Required(scene string) bool {
	if s == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scene)) {
	case CaptchaSceneContact:
		return s.cfg.Scenes.Contact
	default:
		return false
	}
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	image := s.cfg.Image
	driver := base64Captcha.NewDriverString(
		normalizeCaptchaInt(image.Height, 80),
		normalizeCaptchaInt(image.Width, 240),
		image.NoiseCount,
		image.ShowLine,
		normalizeCaptchaInt(image.Length, 4),
		base64Captcha.TxtNumbers+base64Captcha.TxtAlphabet,
		nil,
		nil,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureImageStore())
	id, b64, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   id,
		ImageBase64: b64,
	}, nil
}

// Verify 校验场景验证码；场景未启用时直接通过
func (s *CaptchaService) Verify(scene, captchaID, code string) error {
	if !s.Required(scene) {
		return nil
	}
	captchaID = strings.TrimSpace(captchaID)
	code = strings.TrimSpace(code)
	if captchaID == "" || code == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureImageStore().Verify(captchaID, code, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureImageStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore == nil {
		maxStore := normalizeCaptchaInt(s.cfg.Image.MaxStore, 10240)
		expire := time.Duration(normalizeCaptchaInt(s.cfg.Image.ExpireSeconds, 300)) * time.Second
		s.imageStore = base64Captcha.NewMemoryStore(maxStore, expire)
	}
	return s.imageStore
}

func normalizeCaptchaInt(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
