package service

import (
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"github.com/parcel-next/internal/constants"
	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupParcelServiceTest(t *testing.T) (*ParcelService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Station{},
		&models.Vehicle{},
		&models.DeliveryStaff{},
		&models.Parcel{},
	); err != nil {
		t.Fatalf("migrate parcel tables failed: %v", err)
	}

	generator := NewTrackingNumberGenerator("PKG", 6, 100).
		WithRandSource(rand.NewSource(2024))
	svc := NewParcelService(
		repository.NewParcelRepository(db),
		repository.NewStationRepository(db),
		repository.NewVehicleRepository(db),
		repository.NewDeliveryStaffRepository(db),
		generator,
	)
	return svc, db
}

func TestParcelCreateGeneratesTrackingNumber(t *testing.T) {
	svc, _ := setupParcelServiceTest(t)

	parcel, err := svc.Create(CreateParcelInput{
		Weight:     2.5,
		Length:     30,
		Width:      20,
		Height:     10,
		SenderID:   1,
		ReceiverID: 2,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	pattern := regexp.MustCompile(`^PKG\d{8}[A-Z0-9]{6}$`)
	if !pattern.MatchString(parcel.TrackingNumber) {
		t.Fatalf("unexpected tracking number: %s", parcel.TrackingNumber)
	}
	if parcel.Status != constants.ParcelStatusCreated {
		t.Fatalf("default status want created got %s", parcel.Status)
	}
}

func TestParcelCreateWithInvalidInitialStatus(t *testing.T) {
	svc, _ := setupParcelServiceTest(t)

	bad := "teleported"
	_, err := svc.Create(CreateParcelInput{
		Weight:     1,
		Length:     1,
		Width:      1,
		Height:     1,
		Status:     &bad,
		SenderID:   1,
		ReceiverID: 2,
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestParcelUpdateStatus(t *testing.T) {
	svc, _ := setupParcelServiceTest(t)

	parcel, err := svc.Create(CreateParcelInput{
		Weight: 1, Length: 1, Width: 1, Height: 1,
		SenderID: 1, ReceiverID: 2,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(parcel.ID, constants.ParcelStatusDelivered)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.ParcelStatusDelivered {
		t.Fatalf("status want delivered got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(parcel.ID, "lost_in_space"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(999999, constants.ParcelStatusReturned); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParcelAssignVehicle(t *testing.T) {
	svc, db := setupParcelServiceTest(t)

	parcel, err := svc.Create(CreateParcelInput{
		Weight: 1, Length: 1, Width: 1, Height: 1,
		SenderID: 1, ReceiverID: 2,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.AssignVehicle(parcel.ID, 424242); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}

	vehicle := models.Vehicle{LicensePlate: "ASSIGN-001", Type: "van", Capacity: 800, IsActive: true}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("create vehicle failed: %v", err)
	}

	assigned, err := svc.AssignVehicle(parcel.ID, vehicle.ID)
	if err != nil {
		t.Fatalf("assign vehicle failed: %v", err)
	}
	if assigned.VehicleID == nil || *assigned.VehicleID != vehicle.ID {
		t.Fatalf("vehicle id not set: %+v", assigned.VehicleID)
	}
}

func TestParcelAssignDeliveryStaff(t *testing.T) {
	svc, db := setupParcelServiceTest(t)

	parcel, err := svc.Create(CreateParcelInput{
		Weight: 1, Length: 1, Width: 1, Height: 1,
		SenderID: 1, ReceiverID: 2,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.AssignDeliveryStaff(parcel.ID, 424242); !errors.Is(err, ErrDeliveryStaffNotFound) {
		t.Fatalf("expected ErrDeliveryStaffNotFound, got %v", err)
	}

	staff := models.DeliveryStaff{
		Name:       "Courier One",
		Email:      "courier.one@example.com",
		Phone:      "333",
		EmployeeID: "EMP-ASSIGN-1",
		IsActive:   true,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff failed: %v", err)
	}

	assigned, err := svc.AssignDeliveryStaff(parcel.ID, staff.ID)
	if err != nil {
		t.Fatalf("assign staff failed: %v", err)
	}
	if assigned.DeliveryStaffID == nil || *assigned.DeliveryStaffID != staff.ID {
		t.Fatalf("delivery staff id not set: %+v", assigned.DeliveryStaffID)
	}
}

func TestParcelTrackProjection(t *testing.T) {
	svc, db := setupParcelServiceTest(t)

	origin := models.Station{
		Name: "North Hub", Code: "TRACK-NORTH", Address: "1 North Rd",
		City: "Harbin", State: "HL", PostalCode: "150000", IsActive: true,
	}
	if err := db.Create(&origin).Error; err != nil {
		t.Fatalf("create station failed: %v", err)
	}

	parcel, err := svc.Create(CreateParcelInput{
		Weight: 1, Length: 1, Width: 1, Height: 1,
		SenderID: 1, ReceiverID: 2,
		OriginStationID: &origin.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	info, err := svc.Track(parcel.TrackingNumber)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if info.TrackingNumber != parcel.TrackingNumber {
		t.Fatalf("tracking number mismatch: %s", info.TrackingNumber)
	}
	if info.OriginStationName == nil || *info.OriginStationName != "North Hub" {
		t.Fatalf("origin station name want North Hub got %+v", info.OriginStationName)
	}
	if info.DestinationStationName != nil {
		t.Fatalf("destination station name should be nil when FK is unset")
	}

	if _, err := svc.Track("PKG20250101NOPE01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParcelUpdateKeepsTrackingNumber(t *testing.T) {
	svc, _ := setupParcelServiceTest(t)

	parcel, err := svc.Create(CreateParcelInput{
		Weight: 1, Length: 1, Width: 1, Height: 1,
		SenderID: 1, ReceiverID: 2,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	weight := 9.9
	updated, err := svc.Update(parcel.ID, UpdateParcelInput{Weight: &weight})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.TrackingNumber != parcel.TrackingNumber {
		t.Fatalf("tracking number must be immutable")
	}
	if updated.Weight != 9.9 {
		t.Fatalf("weight want 9.9 got %v", updated.Weight)
	}
}
