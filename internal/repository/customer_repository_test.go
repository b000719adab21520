package repository

import (
	"testing"

	"github.com/parcel-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCustomerRepositoryTest(t *testing.T) (*GormCustomerRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Item{}); err != nil {
		t.Fatalf("migrate customer/item failed: %v", err)
	}
	return NewCustomerRepository(db), db
}

func createCustomer(t *testing.T, repo *GormCustomerRepository, name, email string, active bool) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		Name:     name,
		Email:    email,
		IsActive: active,
	}
	if err := repo.Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return customer
}

func TestCustomerListFilters(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)
	createCustomer(t, repo, "Alice Zhang", "alice.filters@example.com", true)
	createCustomer(t, repo, "Bob Li", "bob.filters@example.com", true)
	createCustomer(t, repo, "Carol Wang", "carol.filters@example.com", false)

	inactive := false
	got, err := repo.List(CustomerListFilter{IsActive: &inactive, Search: "filters"})
	if err != nil {
		t.Fatalf("list inactive failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Carol Wang" {
		t.Fatalf("inactive filter want Carol only, got %d rows", len(got))
	}

	got, err = repo.List(CustomerListFilter{Search: "ALICE.FILTERS"})
	if err != nil {
		t.Fatalf("list search failed: %v", err)
	}
	if len(got) != 1 || got[0].Email != "alice.filters@example.com" {
		t.Fatalf("search should be case-insensitive, got %d rows", len(got))
	}

	got, err = repo.List(CustomerListFilter{Search: "filters", Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("list skip/limit failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Bob Li" {
		t.Fatalf("skip=1 limit=1 should return second row, got %d rows", len(got))
	}
}

func TestCustomerCountByEmailExcludeID(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)
	customer := createCustomer(t, repo, "Dup Check", "dup.count@example.com", true)

	count, err := repo.CountByEmail("dup.count@example.com", nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountByEmail("dup.count@example.com", &customer.ID)
	if err != nil {
		t.Fatalf("count with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("excluding self should give 0, got %d", count)
	}
}

func TestCustomerGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)

	customer, err := repo.GetByID(987654)
	if err != nil {
		t.Fatalf("get missing should not error: %v", err)
	}
	if customer != nil {
		t.Fatalf("missing customer should be nil")
	}
}

func TestCustomerCountItems(t *testing.T) {
	repo, db := setupCustomerRepositoryTest(t)
	customer := createCustomer(t, repo, "Item Owner", "item.owner@example.com", true)

	item := &models.Item{Weight: 1.5, CustomerID: &customer.ID}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	count, err := repo.CountItems(customer.ID)
	if err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count items want 1 got %d", count)
	}
}
