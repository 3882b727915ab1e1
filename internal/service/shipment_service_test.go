package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shiptrack-api/internal/config"
	"github.com/shiptrack-api/internal/constants"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/queue"
	"github.com/shiptrack-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupShipmentServiceTest(t *testing.T) *ShipmentService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Shipment{}, &models.LocationHistory{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	cfg := &config.Config{}
	return NewShipmentService(cfg, repository.NewShipmentRepository(db), queueClient)
}

func TestShipmentServiceCreateGeneratesServerSideID(t *testing.T) {
	svc := setupShipmentServiceTest(t)

	shipment, fieldErrors, err := svc.Create(validShipmentForm())
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}
	if len(fieldErrors) != 0 {
		t.Fatalf("unexpected validation errors: %+v", fieldErrors)
	}
	if !containerIDPattern.MatchString(shipment.ContainerID) {
		t.Fatalf("unexpected container id: %s", shipment.ContainerID)
	}
	if !strings.HasSuffix(shipment.ContainerPath, shipment.ContainerID) {
		t.Fatalf("container path should end with container id: %s", shipment.ContainerPath)
	}
	if shipment.Status != constants.ShipmentStatusPending {
		t.Fatalf("expected default status Pending, got %s", shipment.Status)
	}
	if shipment.ShipmentType != constants.ShipmentTypeStandard {
		t.Fatalf("expected default type Standard, got %s", shipment.ShipmentType)
	}

	got, err := svc.Get(shipment.ID)
	if err != nil {
		t.Fatalf("get shipment failed: %v", err)
	}
	if len(got.LocationHistory) != 1 || got.LocationHistory[0].Location != "Shanghai" {
		t.Fatalf("expected initial location history entry, got %+v", got.LocationHistory)
	}
}

func TestShipmentServiceCreateAcceptsProposedContainerID(t *testing.T) {
	svc := setupShipmentServiceTest(t)

	form := validShipmentForm()
	form.ContainerID = "ship-zz99-1234"
	shipment, _, err := svc.Create(form)
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}
	if shipment.ContainerID != "SHIP-ZZ99-1234" {
		t.Fatalf("expected proposed id to be used uppercased, got %s", shipment.ContainerID)
	}

	// 同一建议编号再次提交：冲突后退回服务端生成
	form = validShipmentForm()
	form.ContainerID = "SHIP-ZZ99-1234"
	second, _, err := svc.Create(form)
	if err != nil {
		t.Fatalf("create with colliding proposed id failed: %v", err)
	}
	if second.ContainerID == "SHIP-ZZ99-1234" {
		t.Fatalf("colliding proposed id should have been replaced")
	}
	if !containerIDPattern.MatchString(second.ContainerID) {
		t.Fatalf("fallback container id malformed: %s", second.ContainerID)
	}

	// 非法建议编号直接忽略
	form = validShipmentForm()
	form.ContainerID = "CONTAINER-123"
	third, _, err := svc.Create(form)
	if err != nil {
		t.Fatalf("create with malformed proposed id failed: %v", err)
	}
	if !containerIDPattern.MatchString(third.ContainerID) {
		t.Fatalf("expected generated id for malformed proposal, got %s", third.ContainerID)
	}
}

func TestShipmentServiceCreateReturnsFieldErrors(t *testing.T) {
	svc := setupShipmentServiceTest(t)

	shipment, fieldErrors, err := svc.Create(&ShipmentForm{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shipment != nil {
		t.Fatalf("expected nil shipment on validation failure")
	}
	if fieldErrors["customerName"] != "Customer name is required" {
		t.Fatalf("expected field errors, got %+v", fieldErrors)
	}
}

func TestShipmentServiceCreateRejectsBadWeightAndDate(t *testing.T) {
	svc := setupShipmentServiceTest(t)

	form := validShipmentForm()
	form.Weight = "heavy"
	if _, _, err := svc.Create(form); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}

	form = validShipmentForm()
	form.DepartureDate = "not-a-date"
	if _, _, err := svc.Create(form); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestShipmentServiceUpdateStatus(t *testing.T) {
	svc := setupShipmentServiceTest(t)
	ctx := context.Background()

	shipment, _, err := svc.Create(validShipmentForm())
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, shipment.ID, constants.ShipmentStatusInTransit)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.ShipmentStatusInTransit {
		t.Fatalf("expected In Transit, got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, shipment.ID, "Teleported"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, 99999, constants.ShipmentStatusDelayed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShipmentServiceUpdateLocationAppendsHistory(t *testing.T) {
	svc := setupShipmentServiceTest(t)
	ctx := context.Background()

	shipment, _, err := svc.Create(validShipmentForm())
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	if _, err := svc.UpdateLocation(ctx, shipment.ID, "   "); !errors.Is(err, ErrEmptyLocation) {
		t.Fatalf("expected ErrEmptyLocation, got %v", err)
	}

	updated, err := svc.UpdateLocation(ctx, shipment.ID, "Singapore")
	if err != nil {
		t.Fatalf("update location failed: %v", err)
	}
	if updated.CurrentLocation != "Singapore" {
		t.Fatalf("expected Singapore, got %s", updated.CurrentLocation)
	}

	got, err := svc.Get(shipment.ID)
	if err != nil {
		t.Fatalf("get shipment failed: %v", err)
	}
	if len(got.LocationHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(got.LocationHistory))
	}
	if got.LocationHistory[1].Location != "Singapore" {
		t.Fatalf("expected latest entry Singapore, got %+v", got.LocationHistory[1])
	}
}

func TestShipmentServiceTrack(t *testing.T) {
	svc := setupShipmentServiceTest(t)
	ctx := context.Background()

	shipment, _, err := svc.Create(validShipmentForm())
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	snapshot, err := svc.Track(ctx, shipment.ContainerID)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if snapshot.ContainerID != shipment.ContainerID || snapshot.CurrentLocation != "Shanghai" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if len(snapshot.History) != 1 {
		t.Fatalf("expected history in snapshot, got %+v", snapshot.History)
	}

	if _, err := svc.Track(ctx, "SHIP-XXXX-0000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown container, got %v", err)
	}
}

func TestShipmentServiceListWithSearch(t *testing.T) {
	svc := setupShipmentServiceTest(t)

	form := validShipmentForm()
	form.CustomerName = "Searchable Client"
	if _, _, err := svc.Create(form); err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}
	if _, _, err := svc.Create(validShipmentForm()); err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	shipments, total, err := svc.List(repository.ShipmentListFilter{Page: 1, PageSize: 10}, "searchable")
	if err != nil {
		t.Fatalf("list with search failed: %v", err)
	}
	if total != 1 || len(shipments) != 1 {
		t.Fatalf("expected single search hit, got total=%d len=%d", total, len(shipments))
	}
	if shipments[0].CustomerName != "Searchable Client" {
		t.Fatalf("unexpected search result: %+v", shipments[0])
	}

	_, total, err = svc.List(repository.ShipmentListFilter{Page: 1, PageSize: 10}, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 shipments without search, got %d", total)
	}
}
