package service

import (
	"strings"

	"github.com/shiptrack-api/internal/constants"
	"github.com/shiptrack-api/internal/logger"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/queue"
	"github.com/shiptrack-api/internal/repository"
)

// EnquiryService 客户咨询服务
type EnquiryService struct {
	enquiryRepo repository.EnquiryRepository
	queueClient *queue.Client
}

// NewEnquiryService 创建客户咨询服务
func NewEnquiryService(enquiryRepo repository.EnquiryRepository, queueClient *queue.Client) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
		queueClient: queueClient,
	}
}

// EnquiryView 带处理操作标记的咨询视图
type EnquiryView struct {
	models.Enquiry
	CanRespond bool `json:"can_respond"`
	CanClose   bool `json:"can_close"`
}

// NewEnquiryView 构建咨询视图
// Pending 可回复可关闭；Responded 仅可关闭；Closed 无后续操作
func NewEnquiryView(enquiry models.Enquiry) EnquiryView {
	return EnquiryView{
		Enquiry:    enquiry,
		CanRespond: enquiry.Status == constants.EnquiryStatusPending,
		CanClose:   enquiry.Status != constants.EnquiryStatusClosed,
	}
}

// Create 创建客户咨询；状态由服务端固定为 Pending
func (s *EnquiryService) Create(form *EnquiryForm, clientIP string) (*models.Enquiry, map[string]string, error) {
	if fieldErrors := ValidateEnquiryForm(form); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	enquiry := &models.Enquiry{
		Name:     form.Name,
		Email:    form.Email,
		Subject:  form.Subject,
		Message:  form.Message,
		Status:   constants.EnquiryStatusPending,
		ClientIP: strings.TrimSpace(clientIP),
	}
	if err := s.enquiryRepo.Create(enquiry); err != nil {
		return nil, nil, err
	}

	if s.queueClient != nil && s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueEnquiryAckEmail(queue.EnquiryAckEmailPayload{EnquiryID: enquiry.ID}); err != nil {
			logger.Warnw("enquiry_ack_email_enqueue_failed", "error", err, "enquiry_id", enquiry.ID)
		}
	}
	return enquiry, nil, nil
}

// Get 获取咨询详情
func (s *EnquiryService) Get(id uint) (*models.Enquiry, error) {
	enquiry, err := s.enquiryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, ErrNotFound
	}
	return enquiry, nil
}

// List 查询咨询列表；带检索词时走全量线性过滤
func (s *EnquiryService) List(filter repository.EnquiryListFilter, search string) ([]EnquiryView, int64, error) {
	search = strings.TrimSpace(search)

	var enquiries []models.Enquiry
	var total int64
	var err error
	if search == "" {
		enquiries, total, err = s.enquiryRepo.List(filter)
		if err != nil {
			return nil, 0, err
		}
	} else {
		all, err := s.enquiryRepo.ListAll()
		if err != nil {
			return nil, 0, err
		}
		matched := FilterRecords(all, search)
		total = int64(len(matched))
		enquiries = paginateSlice(matched, filter.Page, filter.PageSize)
	}

	views := make([]EnquiryView, 0, len(enquiries))
	for _, enquiry := range enquiries {
		views = append(views, NewEnquiryView(enquiry))
	}
	return views, total, nil
}

// UpdateStatus 更新咨询处理状态
func (s *EnquiryService) UpdateStatus(id uint, status string) (*EnquiryView, error) {
	status = strings.TrimSpace(status)
	if !constants.IsValidEnquiryStatus(status) {
		return nil, ErrInvalidEnquiryStatus
	}

	enquiry, err := s.enquiryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, ErrNotFound
	}

	if err := s.enquiryRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	enquiry.Status = status
	view := NewEnquiryView(*enquiry)
	return &view, nil
}
