package service

import (
	"errors"
	"testing"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCustomerServiceTest(t *testing.T) (*CustomerService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Item{}); err != nil {
		t.Fatalf("migrate customer/item failed: %v", err)
	}
	return NewCustomerService(repository.NewCustomerRepository(db)), db
}

func TestCustomerCreateDuplicateEmail(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	if _, err := svc.Create(CreateCustomerInput{Name: "First", Email: "dup.svc@example.com"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(CreateCustomerInput{Name: "Second", Email: "dup.svc@example.com"})
	if !errors.Is(err, ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestCustomerUpdatePartial(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	created, err := svc.Create(CreateCustomerInput{Name: "Partial", Email: "partial.svc@example.com", Phone: "111"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	phone := "222"
	updated, err := svc.Update(created.ID, UpdateCustomerInput{Phone: &phone})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != "222" {
		t.Fatalf("phone want 222 got %s", updated.Phone)
	}
	if updated.Email != "partial.svc@example.com" || updated.Name != "Partial" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at should advance on update")
	}
}

func TestCustomerUpdateEmptyInputKeepsFields(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	created, err := svc.Create(CreateCustomerInput{Name: "Untouched", Email: "untouched.svc@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(created.ID, UpdateCustomerInput{})
	if err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	if updated.Name != "Untouched" || updated.Email != "untouched.svc@example.com" || !updated.IsActive {
		t.Fatalf("empty update should leave fields unchanged: %+v", updated)
	}
	// 空更新也是一次写入，updated_at 要前移
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at should advance even on empty update")
	}
}

func TestCustomerUpdateEmailConflict(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	if _, err := svc.Create(CreateCustomerInput{Name: "Holder", Email: "holder.svc@example.com"}); err != nil {
		t.Fatalf("create holder failed: %v", err)
	}
	other, err := svc.Create(CreateCustomerInput{Name: "Other", Email: "other.svc@example.com"})
	if err != nil {
		t.Fatalf("create other failed: %v", err)
	}

	email := "holder.svc@example.com"
	_, err = svc.Update(other.ID, UpdateCustomerInput{Email: &email})
	if !errors.Is(err, ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}

	// 更新为自己当前的邮箱不算冲突
	own := "other.svc@example.com"
	if _, err := svc.Update(other.ID, UpdateCustomerInput{Email: &own}); err != nil {
		t.Fatalf("update to own email should pass: %v", err)
	}
}

func TestCustomerSetActive(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	created, err := svc.Create(CreateCustomerInput{Name: "Toggle", Email: "toggle.svc@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deactivated, err := svc.SetActive(created.ID, false)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if deactivated.IsActive {
		t.Fatalf("customer should be inactive")
	}

	activated, err := svc.SetActive(created.ID, true)
	if err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if !activated.IsActive {
		t.Fatalf("customer should be active")
	}
}

func TestCustomerDeleteRestrictedByItems(t *testing.T) {
	svc, db := setupCustomerServiceTest(t)

	created, err := svc.Create(CreateCustomerInput{Name: "Owner", Email: "owner.svc@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	item := models.Item{Weight: 2, CustomerID: &created.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	if err := svc.Delete(created.ID); !errors.Is(err, ErrEntityReferenced) {
		t.Fatalf("expected ErrEntityReferenced, got %v", err)
	}

	if err := db.Delete(&models.Item{}, item.ID).Error; err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete after removing items failed: %v", err)
	}
	if _, err := svc.GetByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
