package repository

import (
	"testing"

	"github.com/parcel-next/internal/constants"
	"github.com/parcel-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupParcelRepositoryTest(t *testing.T) *GormParcelRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Parcel{}); err != nil {
		t.Fatalf("migrate parcel failed: %v", err)
	}
	return NewParcelRepository(db)
}

func createParcel(t *testing.T, repo *GormParcelRepository, trackingNumber, status string, senderID, receiverID uint) *models.Parcel {
	t.Helper()
	parcel := &models.Parcel{
		TrackingNumber: trackingNumber,
		Weight:         1,
		Length:         10,
		Width:          10,
		Height:         10,
		Status:         status,
		SenderID:       senderID,
		ReceiverID:     receiverID,
	}
	if err := repo.Create(parcel); err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}
	return parcel
}

func TestParcelListFilters(t *testing.T) {
	repo := setupParcelRepositoryTest(t)
	createParcel(t, repo, "PKG20250101AAAAA1", constants.ParcelStatusCreated, 11, 21)
	createParcel(t, repo, "PKG20250101AAAAA2", constants.ParcelStatusInTransit, 11, 22)
	createParcel(t, repo, "PKG20250101AAAAA3", constants.ParcelStatusInTransit, 12, 22)

	got, err := repo.List(ParcelListFilter{Status: constants.ParcelStatusInTransit})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("status filter want 2 got %d", len(got))
	}

	got, err = repo.List(ParcelListFilter{SenderID: 11, ReceiverID: 22})
	if err != nil {
		t.Fatalf("list by sender/receiver failed: %v", err)
	}
	if len(got) != 1 || got[0].TrackingNumber != "PKG20250101AAAAA2" {
		t.Fatalf("combined filter want single parcel, got %d rows", len(got))
	}
}

func TestParcelGetByTrackingNumber(t *testing.T) {
	repo := setupParcelRepositoryTest(t)
	createParcel(t, repo, "PKG20250101BBBBB1", constants.ParcelStatusCreated, 31, 41)

	parcel, err := repo.GetByTrackingNumber("PKG20250101BBBBB1")
	if err != nil {
		t.Fatalf("get by tracking number failed: %v", err)
	}
	if parcel == nil || parcel.SenderID != 31 {
		t.Fatalf("unexpected parcel: %+v", parcel)
	}

	missing, err := repo.GetByTrackingNumber("PKG20250101ZZZZZ9")
	if err != nil {
		t.Fatalf("get missing should not error: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing tracking number should return nil")
	}
}

func TestParcelCountByTrackingNumber(t *testing.T) {
	repo := setupParcelRepositoryTest(t)
	createParcel(t, repo, "PKG20250101CCCCC1", constants.ParcelStatusCreated, 51, 61)

	count, err := repo.CountByTrackingNumber("PKG20250101CCCCC1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountByTrackingNumber("PKG20250101YYYYY8")
	if err != nil {
		t.Fatalf("count missing failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count want 0 got %d", count)
	}
}
