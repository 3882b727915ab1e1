package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shiptrack-api/internal/config"
	"github.com/shiptrack-api/internal/constants"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/provider"
	"github.com/shiptrack-api/internal/queue"
	"github.com/shiptrack-api/internal/repository"
	"github.com/shiptrack-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Shipment{},
		&models.LocationHistory{},
		&models.Enquiry{},
		&models.AdminLoginLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Auth.Passkey = "handler-test-passkey"
	cfg.JWT.SecretKey = "handler-test-secret"
	cfg.JWT.ExpireHours = 1

	shipmentRepo := repository.NewShipmentRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	loginLogRepo := repository.NewLoginLogRepository(db)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}

	h := &Handler{Container: &provider.Container{
		Config:           cfg,
		QueueClient:      queueClient,
		ShipmentRepo:     shipmentRepo,
		EnquiryRepo:      enquiryRepo,
		LoginLogRepo:     loginLogRepo,
		AuthService:      service.NewAuthService(cfg, loginLogRepo),
		ShipmentService:  service.NewShipmentService(cfg, shipmentRepo, queueClient),
		EnquiryService:   service.NewEnquiryService(enquiryRepo, queueClient),
		DashboardService: service.NewDashboardService(shipmentRepo, enquiryRepo),
	}}

	r := gin.New()
	r.POST("/api/auth/login", h.AdminLogin)
	r.GET("/api/shipments", h.ListShipments)
	r.POST("/api/shipments", h.CreateShipment)
	r.GET("/api/shipments/:id", h.GetShipment)
	r.PATCH("/api/shipments/:id/status", h.UpdateShipmentStatus)
	r.PATCH("/api/shipments/:id/location", h.UpdateShipmentLocation)
	r.GET("/api/contact", h.ListEnquiries)
	r.PATCH("/api/contact/:id", h.UpdateEnquiryStatus)
	r.GET("/api/admin/dashboard/overview", h.GetDashboardOverview)
	return r, db
}

func validShipmentBody() string {
	return `{
		"customerName": "Acme Imports",
		"customerEmail": "ops@acme.example",
		"customerPhone": "+44 20 7946 0958",
		"departureLocation": "Shanghai, China",
		"destinationLocation": "Felixstowe, UK",
		"currentLocation": "Shanghai, China",
		"departureDate": "2026-02-01",
		"eta": "2026-03-10",
		"weight": "18250.5",
		"dimensions": "12m x 2.4m x 2.6m",
		"shipmentType": "Express"
	}`
}

func TestAdminLoginHandler(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"passkey":"handler-test-passkey"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		StatusCode int           `json:"status_code"`
		Data       LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 || resp.Data.Token == "" {
		t.Fatalf("expected token in response, got %s", w.Body.String())
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"passkey":"wrong"}`))
	req2.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("wrong passkey status want 401 got %d", w2.Code)
	}
}

func TestCreateShipmentHandler(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shipments", strings.NewReader(validShipmentBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		StatusCode int             `json:"status_code"`
		Data       models.Shipment `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if !strings.HasPrefix(resp.Data.ContainerID, "SHIP-") {
		t.Fatalf("container id want SHIP- prefix got %s", resp.Data.ContainerID)
	}
	if resp.Data.Status != constants.ShipmentStatusPending {
		t.Fatalf("default status want Pending got %s", resp.Data.Status)
	}
	if resp.Data.ShipmentType != constants.ShipmentTypeExpress {
		t.Fatalf("shipment type want Express got %s", resp.Data.ShipmentType)
	}
}

func TestCreateShipmentHandlerValidationErrors(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shipments", strings.NewReader(`{"customerEmail":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			Errors map[string]string `json:"errors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.Errors["customerName"] != "Customer name is required" {
		t.Fatalf("customerName error want required message got %q", resp.Data.Errors["customerName"])
	}
	if resp.Data.Errors["customerEmail"] != "Invalid email format" {
		t.Fatalf("customerEmail error want invalid format got %q", resp.Data.Errors["customerEmail"])
	}
}

func TestUpdateShipmentStatusHandler(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	created := createShipmentViaAPI(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/shipments/%d/status", created.ID),
		strings.NewReader(`{"status":"In Transit"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data models.Shipment `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.Status != constants.ShipmentStatusInTransit {
		t.Fatalf("status want In Transit got %s", resp.Data.Status)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/shipments/%d/status", created.ID),
		strings.NewReader(`{"status":"Teleported"}`))
	req2.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("invalid status want 400 got %d", w2.Code)
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPatch, "/api/shipments/99999/status",
		strings.NewReader(`{"status":"Delivered"}`))
	req3.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusNotFound {
		t.Fatalf("unknown shipment want 404 got %d", w3.Code)
	}
}

func TestUpdateShipmentLocationHandler(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	created := createShipmentViaAPI(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/shipments/%d/location", created.ID),
		strings.NewReader(`{"location":"Port of Singapore"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data models.Shipment `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.CurrentLocation != "Port of Singapore" {
		t.Fatalf("current location want Port of Singapore got %s", resp.Data.CurrentLocation)
	}
}

func TestListShipmentsHandlerWithSearch(t *testing.T) {
	r, db := setupAdminHandlerTest(t)

	created := createShipmentViaAPI(t, r)
	var count int64
	if err := db.Model(&models.Shipment{}).Count(&count).Error; err != nil {
		t.Fatalf("count shipments failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("seed count want 1 got %d", count)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shipments?search="+created.ContainerID, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		Data       []models.Shipment `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Pagination.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("search should match one shipment, body %s", w.Body.String())
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/shipments?search=no-such-container", nil)
	r.ServeHTTP(w2, req2)
	var resp2 struct {
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp2.Pagination.Total != 0 {
		t.Fatalf("no-match search total want 0 got %d", resp2.Pagination.Total)
	}
}

func TestUpdateEnquiryStatusHandler(t *testing.T) {
	r, db := setupAdminHandlerTest(t)

	enquiry := models.Enquiry{
		Name:    "Maria Santos",
		Email:   "maria@example.com",
		Subject: "Quote request",
		Message: "Please quote a 40ft container to Rotterdam.",
		Status:  constants.EnquiryStatusPending,
	}
	if err := db.Create(&enquiry).Error; err != nil {
		t.Fatalf("create enquiry failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/contact/%d", enquiry.ID),
		strings.NewReader(`{"status":"Responded"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data service.EnquiryView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.Status != constants.EnquiryStatusResponded {
		t.Fatalf("status want Responded got %s", resp.Data.Status)
	}
	if resp.Data.CanRespond || !resp.Data.CanClose {
		t.Fatalf("responded enquiry should only allow close, body %s", w.Body.String())
	}
}

func TestGetDashboardOverviewHandler(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	createShipmentViaAPI(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard/overview", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		Data service.DashboardOverview `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.TotalShipments != 1 {
		t.Fatalf("total shipments want 1 got %d", resp.Data.TotalShipments)
	}
	if resp.Data.ShipmentByStatus[constants.ShipmentStatusPending] != 1 {
		t.Fatalf("pending count want 1, body %s", w.Body.String())
	}
}

func createShipmentViaAPI(t *testing.T, r *gin.Engine) models.Shipment {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shipments", strings.NewReader(validShipmentBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("create shipment status want 200 got %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data models.Shipment `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal create response failed: %v", err)
	}
	return resp.Data
}
