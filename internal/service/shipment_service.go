package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shiptrack-api/internal/cache"
	"github.com/shiptrack-api/internal/config"
	"github.com/shiptrack-api/internal/constants"
	"github.com/shiptrack-api/internal/logger"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/queue"
	"github.com/shiptrack-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	shipmentDateLayout     = "2006-01-02"
	containerIDMaxAttempts = 5
)

// ShipmentService 货运单服务
type ShipmentService struct {
	cfg          *config.Config
	shipmentRepo repository.ShipmentRepository
	queueClient  *queue.Client
}

// NewShipmentService 创建货运单服务
func NewShipmentService(cfg *config.Config, shipmentRepo repository.ShipmentRepository, queueClient *queue.Client) *ShipmentService {
	return &ShipmentService{
		cfg:          cfg,
		shipmentRepo: shipmentRepo,
		queueClient:  queueClient,
	}
}

// Create 创建货运单
// 编号由服务端生成；唯一索引冲突时重新生成并重试
func (s *ShipmentService) Create(form *ShipmentForm) (*models.Shipment, map[string]string, error) {
	if fieldErrors := ValidateShipmentForm(form); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	weight, err := parseWeight(form.Weight)
	if err != nil {
		return nil, nil, err
	}
	departureDate, err := parseShipmentDate(form.DepartureDate)
	if err != nil {
		return nil, nil, err
	}
	eta, err := parseShipmentDate(form.ETA)
	if err != nil {
		return nil, nil, err
	}

	status := form.Status
	if status == "" {
		status = constants.ShipmentStatusPending
	}
	if !constants.IsValidShipmentStatus(status) {
		return nil, nil, ErrInvalidStatus
	}
	shipmentType := form.ShipmentType
	if shipmentType == "" {
		shipmentType = constants.ShipmentTypeStandard
	}
	if !constants.IsValidShipmentType(shipmentType) {
		return nil, nil, ErrInvalidShipmentType
	}

	now := time.Now()
	shipment := &models.Shipment{
		CustomerName:        form.CustomerName,
		CustomerEmail:       form.CustomerEmail,
		CustomerPhone:       form.CustomerPhone,
		DepartureLocation:   form.DepartureLocation,
		DestinationLocation: form.DestinationLocation,
		CurrentLocation:     form.CurrentLocation,
		DepartureDate:       departureDate,
		ETA:                 eta,
		Status:              status,
		ShipmentType:        shipmentType,
		Weight:              models.NewWeightFromDecimal(weight),
		Dimensions:          form.Dimensions,
		Description:         form.Description,
		SpecialInstructions: form.SpecialInstructions,
	}

	// 客户端建议编号：格式合法时先尝试使用，冲突或非法时退回服务端生成
	proposedID := ""
	if IsValidContainerID(form.ContainerID) {
		proposedID = form.ContainerID
	}

	var lastErr error
	for attempt := 0; attempt < containerIDMaxAttempts; attempt++ {
		containerID := proposedID
		if containerID == "" {
			containerID = GenerateContainerID()
		}
		proposedID = ""
		shipment.ContainerID = containerID
		shipment.ContainerPath = GenerateContainerPath(containerID, now)
		if err := s.shipmentRepo.Create(shipment); err != nil {
			if isDuplicateKeyError(err) {
				lastErr = err
				continue
			}
			return nil, nil, err
		}
		lastErr = nil
		break
	}
	if lastErr != nil {
		logger.Errorw("container_id_generation_exhausted", "error", lastErr)
		return nil, nil, ErrContainerIDExhausted
	}

	if err := s.shipmentRepo.AppendLocationHistory(&models.LocationHistory{
		ShipmentID: shipment.ID,
		Location:   shipment.CurrentLocation,
		Status:     shipment.Status,
		RecordedAt: now,
	}); err != nil {
		logger.Warnw("initial_location_history_failed", "error", err, "shipment_id", shipment.ID)
	}

	return shipment, nil, nil
}

// Get 获取货运单详情
func (s *ShipmentService) Get(id uint) (*models.Shipment, error) {
	shipment, err := s.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrNotFound
	}
	return shipment, nil
}

// List 查询货运单列表
// 带检索词时走全量线性过滤，再做内存分页
func (s *ShipmentService) List(filter repository.ShipmentListFilter, search string) ([]models.Shipment, int64, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return s.shipmentRepo.List(filter)
	}

	all, err := s.shipmentRepo.ListAll()
	if err != nil {
		return nil, 0, err
	}
	matched := FilterRecords(all, search)
	total := int64(len(matched))
	return paginateSlice(matched, filter.Page, filter.PageSize), total, nil
}

// UpdateStatus 更新货运状态并记录轨迹
func (s *ShipmentService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Shipment, error) {
	status = strings.TrimSpace(status)
	if !constants.IsValidShipmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	shipment, err := s.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	if err := s.shipmentRepo.UpdateFields(id, map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}); err != nil {
		return nil, err
	}
	if err := s.shipmentRepo.AppendLocationHistory(&models.LocationHistory{
		ShipmentID: id,
		Location:   shipment.CurrentLocation,
		Status:     status,
		RecordedAt: now,
	}); err != nil {
		logger.Warnw("location_history_append_failed", "error", err, "shipment_id", id)
	}
	shipment.Status = status
	shipment.UpdatedAt = now

	s.invalidateTracking(ctx, shipment.ContainerID)
	s.notifyStatusChange(shipment)
	return shipment, nil
}

// UpdateLocation 更新当前位置并记录轨迹
func (s *ShipmentService) UpdateLocation(ctx context.Context, id uint, location string) (*models.Shipment, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	shipment, err := s.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	if err := s.shipmentRepo.UpdateFields(id, map[string]interface{}{
		"current_location": location,
		"updated_at":       now,
	}); err != nil {
		return nil, err
	}
	if err := s.shipmentRepo.AppendLocationHistory(&models.LocationHistory{
		ShipmentID: id,
		Location:   location,
		Status:     shipment.Status,
		RecordedAt: now,
	}); err != nil {
		logger.Warnw("location_history_append_failed", "error", err, "shipment_id", id)
	}
	shipment.CurrentLocation = location
	shipment.UpdatedAt = now

	s.invalidateTracking(ctx, shipment.ContainerID)
	return shipment, nil
}

// Track 公开追踪查询；优先读缓存
func (s *ShipmentService) Track(ctx context.Context, containerID string) (*cache.TrackingSnapshot, error) {
	containerID = strings.TrimSpace(containerID)
	if containerID == "" {
		return nil, ErrNotFound
	}

	if snapshot, hit, err := cache.GetTrackingSnapshot(ctx, containerID); err == nil && hit {
		return snapshot, nil
	} else if err != nil {
		logger.Warnw("tracking_cache_read_failed", "error", err, "container_id", containerID)
	}

	shipment, err := s.shipmentRepo.GetByContainerID(containerID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrNotFound
	}

	snapshot := buildTrackingSnapshot(shipment)
	ttl := time.Duration(0)
	if s.cfg != nil && s.cfg.Tracking.CacheTTLSeconds > 0 {
		ttl = time.Duration(s.cfg.Tracking.CacheTTLSeconds) * time.Second
	}
	if err := cache.SetTrackingSnapshot(ctx, snapshot, ttl); err != nil {
		logger.Warnw("tracking_cache_write_failed", "error", err, "container_id", containerID)
	}
	return snapshot, nil
}

func (s *ShipmentService) invalidateTracking(ctx context.Context, containerID string) {
	if err := cache.DelTrackingSnapshot(ctx, containerID); err != nil {
		logger.Warnw("tracking_cache_invalidate_failed", "error", err, "container_id", containerID)
	}
}

func (s *ShipmentService) notifyStatusChange(shipment *models.Shipment) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if err := s.queueClient.EnqueueShipmentStatusEmail(queue.ShipmentStatusEmailPayload{
		ShipmentID: shipment.ID,
		Status:     shipment.Status,
		Location:   shipment.CurrentLocation,
	}); err != nil {
		logger.Warnw("shipment_status_email_enqueue_failed", "error", err, "shipment_id", shipment.ID)
	}
}

func buildTrackingSnapshot(shipment *models.Shipment) *cache.TrackingSnapshot {
	snapshot := &cache.TrackingSnapshot{
		ContainerID:     shipment.ContainerID,
		ContainerPath:   shipment.ContainerPath,
		Status:          shipment.Status,
		ShipmentType:    shipment.ShipmentType,
		CurrentLocation: shipment.CurrentLocation,
		Departure:       shipment.DepartureLocation,
		Destination:     shipment.DestinationLocation,
		DepartureDate:   shipment.DepartureDate,
		ETA:             shipment.ETA,
	}
	for _, entry := range shipment.LocationHistory {
		snapshot.History = append(snapshot.History, cache.TrackingMovement{
			Location:   entry.Location,
			Status:     entry.Status,
			RecordedAt: entry.RecordedAt,
		})
	}
	return snapshot
}

func parseWeight(raw string) (decimal.Decimal, error) {
	weight, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidWeight
	}
	if weight.IsNegative() {
		return decimal.Decimal{}, ErrInvalidWeight
	}
	return weight, nil
}

func parseShipmentDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(shipmentDateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func paginateSlice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
