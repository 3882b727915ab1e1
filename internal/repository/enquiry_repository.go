package repository

import (
	"errors"
	"strings"

	"github.com/shiptrack-api/internal/models"

	"gorm.io/gorm"
)

// EnquiryRepository 客户咨询数据访问接口
type EnquiryRepository interface {
	Create(enquiry *models.Enquiry) error
	GetByID(id uint) (*models.Enquiry, error)
	List(filter EnquiryListFilter) ([]models.Enquiry, int64, error)
	ListAll() ([]models.Enquiry, error)
	UpdateStatus(id uint, status string) error
	CountByStatus() (map[string]int64, error)
	WithTx(tx *gorm.DB) *GormEnquiryRepository
}

// GormEnquiryRepository GORM 实现
type GormEnquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository 创建客户咨询仓库
func NewEnquiryRepository(db *gorm.DB) *GormEnquiryRepository {
	return &GormEnquiryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormEnquiryRepository) WithTx(tx *gorm.DB) *GormEnquiryRepository {
	if tx == nil {
		return r
	}
	return &GormEnquiryRepository{db: tx}
}

// Create 创建客户咨询
func (r *GormEnquiryRepository) Create(enquiry *models.Enquiry) error {
	return r.db.Create(enquiry).Error
}

// GetByID 根据 ID 获取客户咨询
func (r *GormEnquiryRepository) GetByID(id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := r.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enquiry, nil
}

// List 分页查询客户咨询列表
func (r *GormEnquiryRepository) List(filter EnquiryListFilter) ([]models.Enquiry, int64, error) {
	query := r.db.Model(&models.Enquiry{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", strings.TrimSpace(filter.Email))
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var enquiries []models.Enquiry
	query = applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&enquiries).Error; err != nil {
		return nil, 0, err
	}
	return enquiries, total, nil
}

// ListAll 获取全部客户咨询（用于全文过滤）
func (r *GormEnquiryRepository) ListAll() ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	if err := r.db.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// UpdateStatus 更新咨询处理状态
func (r *GormEnquiryRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status).Error
}

// CountByStatus 按处理状态统计咨询数量
func (r *GormEnquiryRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.Model(&models.Enquiry{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
