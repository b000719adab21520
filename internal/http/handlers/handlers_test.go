package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/parcel-next/internal/config"
	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	h := New(provider.NewContainer(&config.Config{}))

	r := gin.New()
	r.GET("/health", h.Health)
	api := r.Group("/api/v1")

	customers := api.Group("/customers")
	customers.GET("", h.GetCustomers)
	customers.GET("/:id", h.GetCustomer)
	customers.POST("", h.CreateCustomer)
	customers.PUT("/:id", h.UpdateCustomer)
	customers.PATCH("/:id/deactivate", h.DeactivateCustomer)
	customers.DELETE("/:id", h.DeleteCustomer)

	parcels := api.Group("/parcels")
	parcels.GET("/track/:tracking_number", h.TrackParcel)
	parcels.POST("", h.CreateParcel)
	parcels.PATCH("/:id/assign-vehicle", h.AssignVehicle)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerLifecycleAPI(t *testing.T) {
	r := setupHandlerTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers",
		`{"name":"Life Cycle","email":"lifecycle.api@example.com","phone":"100"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d body %s", w.Code, w.Body.String())
	}
	var created models.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response failed: %v", err)
	}
	if created.ID == 0 || !created.IsActive {
		t.Fatalf("unexpected created customer: %+v", created)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/customers",
		`{"name":"Dup","email":"lifecycle.api@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate want 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email already registered") {
		t.Fatalf("duplicate body missing detail: %s", w.Body.String())
	}

	idPath := "/api/v1/customers/" + uintToString(created.ID)
	w = doJSON(t, r, http.MethodGet, idPath, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get want 200 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, idPath+"/deactivate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate want 200 got %d", w.Code)
	}
	var deactivated models.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &deactivated); err != nil {
		t.Fatalf("decode deactivate response failed: %v", err)
	}
	if deactivated.IsActive {
		t.Fatalf("customer should be inactive after deactivate")
	}

	w = doJSON(t, r, http.MethodDelete, idPath, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete want 204 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, idPath, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete want 404 got %d", w.Code)
	}
}

func TestCreateParcelAPI(t *testing.T) {
	r := setupHandlerTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/parcels",
		`{"weight":2.5,"length":30,"width":20,"height":10,"sender_id":1,"receiver_id":2}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create parcel want 201 got %d body %s", w.Code, w.Body.String())
	}

	var parcel models.Parcel
	if err := json.Unmarshal(w.Body.Bytes(), &parcel); err != nil {
		t.Fatalf("decode parcel response failed: %v", err)
	}
	pattern := regexp.MustCompile(`^PKG\d{8}[A-Z0-9]{6}$`)
	if !pattern.MatchString(parcel.TrackingNumber) {
		t.Fatalf("unexpected tracking number: %s", parcel.TrackingNumber)
	}
	if parcel.Status != "created" {
		t.Fatalf("default status want created got %s", parcel.Status)
	}
}

func TestCreateParcelAPIRejectsInvalidDimensions(t *testing.T) {
	r := setupHandlerTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/parcels",
		`{"weight":0,"length":30,"width":20,"height":10,"sender_id":1,"receiver_id":2}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero weight want 400 got %d", w.Code)
	}
}

func TestAssignVehicleAPIMissingParcel(t *testing.T) {
	r := setupHandlerTest(t)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/parcels/999999/assign-vehicle?vehicle_id=1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing parcel want 404 got %d body %s", w.Code, w.Body.String())
	}
}

func TestTrackParcelAPI(t *testing.T) {
	r := setupHandlerTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/parcels/track/PKG20250101NOSUCH", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown tracking number want 404 got %d", w.Code)
	}

	origin := models.Station{
		Name: "Track Hub", Code: "TRACK-HUB-API", Address: "5 Hub Rd",
		City: "Wuhan", State: "HB", PostalCode: "430000", IsActive: true,
	}
	if err := models.DB.Create(&origin).Error; err != nil {
		t.Fatalf("create station failed: %v", err)
	}

	body := `{"weight":1,"length":1,"width":1,"height":1,"sender_id":3,"receiver_id":4,"origin_station_id":` + uintToString(origin.ID) + `}`
	w = doJSON(t, r, http.MethodPost, "/api/v1/parcels", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create parcel want 201 got %d body %s", w.Code, w.Body.String())
	}
	var parcel models.Parcel
	if err := json.Unmarshal(w.Body.Bytes(), &parcel); err != nil {
		t.Fatalf("decode parcel response failed: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/parcels/track/"+parcel.TrackingNumber, "")
	if w.Code != http.StatusOK {
		t.Fatalf("track want 200 got %d body %s", w.Code, w.Body.String())
	}

	var info struct {
		TrackingNumber         string  `json:"tracking_number"`
		Status                 string  `json:"status"`
		OriginStationName      *string `json:"origin_station_name"`
		DestinationStationName *string `json:"destination_station_name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode track response failed: %v", err)
	}
	if info.TrackingNumber != parcel.TrackingNumber || info.Status != "created" {
		t.Fatalf("unexpected tracking projection: %+v", info)
	}
	if info.OriginStationName == nil || *info.OriginStationName != "Track Hub" {
		t.Fatalf("origin station name want Track Hub got %+v", info.OriginStationName)
	}
	if info.DestinationStationName != nil {
		t.Fatalf("destination station name should be null when unset")
	}
}

func TestHealthAPI(t *testing.T) {
	r := setupHandlerTest(t)

	w := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("health body missing ok: %s", w.Body.String())
	}
}

func uintToString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
