package service

import (
	"errors"
	"testing"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupDeliveryStaffServiceTest(t *testing.T) *DeliveryStaffService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DeliveryStaff{}); err != nil {
		t.Fatalf("migrate delivery staff failed: %v", err)
	}
	return NewDeliveryStaffService(repository.NewDeliveryStaffRepository(db))
}

func TestDeliveryStaffCreateDuplicateEmail(t *testing.T) {
	svc := setupDeliveryStaffServiceTest(t)

	if _, err := svc.Create(CreateDeliveryStaffInput{
		Name: "Staff A", Email: "staff.dupmail@example.com", EmployeeID: "EMP-DUP-A1",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(CreateDeliveryStaffInput{
		Name: "Staff B", Email: "staff.dupmail@example.com", EmployeeID: "EMP-DUP-A2",
	})
	if !errors.Is(err, ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestDeliveryStaffCreateDuplicateEmployeeID(t *testing.T) {
	svc := setupDeliveryStaffServiceTest(t)

	if _, err := svc.Create(CreateDeliveryStaffInput{
		Name: "Staff C", Email: "staff.dupid.c@example.com", EmployeeID: "EMP-DUP-B1",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(CreateDeliveryStaffInput{
		Name: "Staff D", Email: "staff.dupid.d@example.com", EmployeeID: "EMP-DUP-B1",
	})
	if !errors.Is(err, ErrEmployeeIDRegistered) {
		t.Fatalf("expected ErrEmployeeIDRegistered, got %v", err)
	}
}

func TestDeliveryStaffGetByEmployeeID(t *testing.T) {
	svc := setupDeliveryStaffServiceTest(t)

	created, err := svc.Create(CreateDeliveryStaffInput{
		Name: "Staff E", Email: "staff.lookup@example.com", EmployeeID: "EMP-LOOKUP-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := svc.GetByEmployeeID("EMP-LOOKUP-1")
	if err != nil {
		t.Fatalf("get by employee id failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("lookup returned wrong row: want %d got %d", created.ID, found.ID)
	}

	if _, err := svc.GetByEmployeeID("EMP-NOBODY"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
