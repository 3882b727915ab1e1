package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shiptrack-api/internal/constants"
	"github.com/shiptrack-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEnquiryRepositoryTest(t *testing.T) (*GormEnquiryRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Enquiry{}); err != nil {
		t.Fatalf("migrate enquiry model failed: %v", err)
	}
	return NewEnquiryRepository(db), db
}

func TestEnquiryCreateAndUpdateStatus(t *testing.T) {
	repo, _ := setupEnquiryRepositoryTest(t)

	enquiry := &models.Enquiry{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Shipping quote",
		Message: "How much for a 20ft container to Hamburg?",
		Status:  constants.EnquiryStatusPending,
	}
	if err := repo.Create(enquiry); err != nil {
		t.Fatalf("create enquiry failed: %v", err)
	}

	if err := repo.UpdateStatus(enquiry.ID, constants.EnquiryStatusResponded); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	got, err := repo.GetByID(enquiry.ID)
	if err != nil {
		t.Fatalf("get enquiry failed: %v", err)
	}
	if got == nil || got.Status != constants.EnquiryStatusResponded {
		t.Fatalf("expected responded enquiry, got %+v", got)
	}
}

func TestEnquiryListFiltersByStatus(t *testing.T) {
	repo, _ := setupEnquiryRepositoryTest(t)

	for i, status := range []string{
		constants.EnquiryStatusPending,
		constants.EnquiryStatusPending,
		constants.EnquiryStatusClosed,
	} {
		enquiry := &models.Enquiry{
			Name:    fmt.Sprintf("Customer %d", i),
			Email:   fmt.Sprintf("customer%d@example.com", i),
			Subject: "Enquiry",
			Message: "Message body",
			Status:  status,
		}
		if err := repo.Create(enquiry); err != nil {
			t.Fatalf("create enquiry failed: %v", err)
		}
	}

	enquiries, total, err := repo.List(EnquiryListFilter{Page: 1, PageSize: 10, Status: constants.EnquiryStatusPending})
	if err != nil {
		t.Fatalf("list enquiries failed: %v", err)
	}
	if total != 2 || len(enquiries) != 2 {
		t.Fatalf("expected 2 pending enquiries, got total=%d len=%d", total, len(enquiries))
	}

	counts, err := repo.CountByStatus()
	if err != nil {
		t.Fatalf("count by status failed: %v", err)
	}
	if counts[constants.EnquiryStatusPending] != 2 || counts[constants.EnquiryStatusClosed] != 1 {
		t.Fatalf("unexpected status counts: %+v", counts)
	}
}
