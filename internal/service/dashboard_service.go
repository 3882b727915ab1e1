package service

import (
	"github.com/shiptrack-api/internal/constants"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/repository"
)

// DashboardService 管理端概览服务
type DashboardService struct {
	shipmentRepo repository.ShipmentRepository
	enquiryRepo  repository.EnquiryRepository
}

// NewDashboardService 创建概览服务
func NewDashboardService(shipmentRepo repository.ShipmentRepository, enquiryRepo repository.EnquiryRepository) *DashboardService {
	return &DashboardService{
		shipmentRepo: shipmentRepo,
		enquiryRepo:  enquiryRepo,
	}
}

// DashboardOverview 概览数据
type DashboardOverview struct {
	TotalShipments   int64            `json:"total_shipments"`
	ShipmentByStatus map[string]int64 `json:"shipment_by_status"`
	TotalWeight      models.Weight    `json:"total_weight"`
	TotalEnquiries   int64            `json:"total_enquiries"`
	EnquiryByStatus  map[string]int64 `json:"enquiry_by_status"`
	PendingEnquiries int64            `json:"pending_enquiries"`
}

// Overview 汇总货运与咨询数据
func (s *DashboardService) Overview() (*DashboardOverview, error) {
	shipmentCounts, err := s.shipmentRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	totalWeight, err := s.shipmentRepo.SumWeight()
	if err != nil {
		return nil, err
	}
	enquiryCounts, err := s.enquiryRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		ShipmentByStatus: ensureStatusKeys(shipmentCounts, constants.ShipmentStatuses),
		TotalWeight:      totalWeight,
		EnquiryByStatus:  ensureStatusKeys(enquiryCounts, constants.EnquiryStatuses),
	}
	for _, count := range shipmentCounts {
		overview.TotalShipments += count
	}
	for _, count := range enquiryCounts {
		overview.TotalEnquiries += count
	}
	overview.PendingEnquiries = enquiryCounts[constants.EnquiryStatusPending]
	return overview, nil
}

// ensureStatusKeys 补齐计数缺失的状态键，便于前端直接渲染
func ensureStatusKeys(counts map[string]int64, statuses []string) map[string]int64 {
	result := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		result[status] = counts[status]
	}
	return result
}
