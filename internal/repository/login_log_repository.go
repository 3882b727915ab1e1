package repository

import (
	"strings"

	"github.com/shiptrack-api/internal/models"

	"gorm.io/gorm"
)

// LoginLogRepository 登录日志数据访问接口
type LoginLogRepository interface {
	Create(entry *models.AdminLoginLog) error
	List(filter LoginLogListFilter) ([]models.AdminLoginLog, int64, error)
	WithTx(tx *gorm.DB) *GormLoginLogRepository
}

// GormLoginLogRepository GORM 实现
type GormLoginLogRepository struct {
	db *gorm.DB
}

// NewLoginLogRepository 创建登录日志仓库
func NewLoginLogRepository(db *gorm.DB) *GormLoginLogRepository {
	return &GormLoginLogRepository{db: db}
}

// WithTx 绑定事务
func (r *GormLoginLogRepository) WithTx(tx *gorm.DB) *GormLoginLogRepository {
	if tx == nil {
		return r
	}
	return &GormLoginLogRepository{db: tx}
}

// Create 写入登录日志
func (r *GormLoginLogRepository) Create(entry *models.AdminLoginLog) error {
	return r.db.Create(entry).Error
}

// List 分页查询登录日志
func (r *GormLoginLogRepository) List(filter LoginLogListFilter) ([]models.AdminLoginLog, int64, error) {
	query := r.db.Model(&models.AdminLoginLog{})
	if filter.Success != nil {
		query = query.Where("success = ?", *filter.Success)
	}
	if filter.IP != "" {
		query = query.Where("ip = ?", strings.TrimSpace(filter.IP))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AdminLoginLog
	query = applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
