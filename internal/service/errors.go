package service

import "errors"

// 服务层统一错误，供 handler 做错误分类
var (
	ErrNotFound              = errors.New("记录不存在")
	ErrInvalidCredentials    = errors.New("通行密钥错误")
	ErrInvalidStatus         = errors.New("非法的货运状态")
	ErrInvalidShipmentType   = errors.New("非法的货运类型")
	ErrInvalidEnquiryStatus  = errors.New("非法的咨询状态")
	ErrInvalidWeight         = errors.New("非法的重量")
	ErrInvalidDate           = errors.New("非法的日期格式")
	ErrEmptyLocation         = errors.New("位置不能为空")
	ErrContainerIDExhausted  = errors.New("集装箱编号生成冲突")
	ErrEmailServiceDisabled  = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrInvalidEmail          = errors.New("无效的邮箱地址")
	ErrCaptchaRequired       = errors.New("需要验证码")
	ErrCaptchaInvalid        = errors.New("验证码错误")
)
