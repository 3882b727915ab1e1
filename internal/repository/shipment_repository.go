package repository

import (
	"errors"
	"strings"

	"github.com/shiptrack-api/internal/models"

	"gorm.io/gorm"
)

// ShipmentRepository 货运单数据访问接口
type ShipmentRepository interface {
	Create(shipment *models.Shipment) error
	GetByID(id uint) (*models.Shipment, error)
	GetByContainerID(containerID string) (*models.Shipment, error)
	List(filter ShipmentListFilter) ([]models.Shipment, int64, error)
	ListAll() ([]models.Shipment, error)
	UpdateFields(id uint, updates map[string]interface{}) error
	AppendLocationHistory(entry *models.LocationHistory) error
	CountByStatus() (map[string]int64, error)
	SumWeight() (models.Weight, error)
	WithTx(tx *gorm.DB) *GormShipmentRepository
}

// GormShipmentRepository GORM 实现
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository 创建货运单仓库
func NewShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShipmentRepository) WithTx(tx *gorm.DB) *GormShipmentRepository {
	if tx == nil {
		return r
	}
	return &GormShipmentRepository{db: tx}
}

// Create 创建货运单
func (r *GormShipmentRepository) Create(shipment *models.Shipment) error {
	return r.db.Create(shipment).Error
}

// GetByID 根据 ID 获取货运单
func (r *GormShipmentRepository) GetByID(id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.Preload("LocationHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("recorded_at ASC")
	}).First(&shipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

// GetByContainerID 根据集装箱编号获取货运单
func (r *GormShipmentRepository) GetByContainerID(containerID string) (*models.Shipment, error) {
	containerID = strings.TrimSpace(containerID)
	if containerID == "" {
		return nil, nil
	}
	var shipment models.Shipment
	if err := r.db.Preload("LocationHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("recorded_at ASC")
	}).Where("container_id = ?", containerID).First(&shipment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

// List 分页查询货运单列表
func (r *GormShipmentRepository) List(filter ShipmentListFilter) ([]models.Shipment, int64, error) {
	query := r.db.Model(&models.Shipment{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("shipment_type = ?", filter.Type)
	}
	if filter.ContainerID != "" {
		query = query.Where("container_id = ?", strings.TrimSpace(filter.ContainerID))
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

	var shipments []models.Shipment
	query = applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&shipments).Error; err != nil {
		return nil, 0, err
	}
	return shipments, total, nil
}

// ListAll 获取全部货运单（用于全文过滤）
func (r *GormShipmentRepository) ListAll() ([]models.Shipment, error) {
	var shipments []models.Shipment
	if err := r.db.Order("created_at DESC").Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// UpdateFields 按字段更新货运单
func (r *GormShipmentRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Shipment{}).Where("id = ?", id).Updates(updates).Error
}

// AppendLocationHistory 追加位置变更记录
func (r *GormShipmentRepository) AppendLocationHistory(entry *models.LocationHistory) error {
	return r.db.Create(entry).Error
}

// CountByStatus 按状态统计货运单数量
func (r *GormShipmentRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.Model(&models.Shipment{}).
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

// SumWeight 统计全部货运单总重量
func (r *GormShipmentRepository) SumWeight() (models.Weight, error) {
	var row struct {
		Total models.Weight
	}
	if err := r.db.Model(&models.Shipment{}).
		Select("COALESCE(SUM(weight), 0) as total").
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Weight{}, nil
		}
		return models.Weight{}, err
	}
	return row.Total, nil
}
