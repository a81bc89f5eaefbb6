package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	listingserrors "driveway/internal/listings/errors"
	"driveway/internal/listings/validator"
	"driveway/pkg/config"
	mongotx "driveway/pkg/db/mongo"
	apperrors "driveway/pkg/errors"
	"driveway/pkg/logger"
	"driveway/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// ────────────────────────────────────────────────
// Mock repository for testing
// ────────────────────────────────────────────────

type mockListingRepository struct {
	createFunc           func(ctx context.Context, l *model.Listing) error
	findByIDFunc         func(ctx context.Context, id string) (*model.Listing, error)
	findAllFunc          func(ctx context.Context, limit int, offset int64) ([]*model.Listing, error)
	findActiveFunc       func(ctx context.Context) ([]*model.Listing, error)
	findByOwnerPhoneFunc func(ctx context.Context, phone string) ([]*model.Listing, error)
	updateFunc           func(ctx context.Context, id string, l *model.Listing) (*mongo.UpdateResult, error)
	deleteFunc           func(ctx context.Context, id string) error
	countFunc            func(ctx context.Context) (int64, error)
}

func (m *mockListingRepository) Create(ctx context.Context, l *model.Listing) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, l)
	}
	return nil
}

func (m *mockListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockListingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Listing, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) FindActive(ctx context.Context) ([]*model.Listing, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx)
	}
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) FindByOwnerPhone(ctx context.Context, phone string) ([]*model.Listing, error) {
	if m.findByOwnerPhoneFunc != nil {
		return m.findByOwnerPhoneFunc(ctx, phone)
	}
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) Search(ctx context.Context, city string, limit int, offset int64) ([]*model.Listing, error) {
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) Update(ctx context.Context, id string, l *model.Listing) (*mongo.UpdateResult, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, l)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (m *mockListingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockListingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockListingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:     "info",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
		ReadTimeout:                5 * time.Second,
		DefaultOpenTime:            "08:00",
		DefaultCloseTime:           "20:00",
		MaxHourlyRate:              1000,
		DefaultAvailableDaysIsrael: []int{0, 1, 2, 3, 4},
		DefaultAvailableDaysUs:     []int{1, 2, 3, 4, 5},
	}
}

func newTestService(repo *mockListingRepository) ListingService {
	cfg := testConfig()
	return NewListingService(repo, validator.NewListingValidator(cfg.Log), cfg)
}

func validListing() *model.Listing {
	return &model.Listing{
		OwnerPhone:    "+14155550100",
		Street:        "1720 Market Street",
		City:          "San Francisco",
		Region:        "CA",
		PostalCode:    "94102",
		OpenTime:      "07:00",
		CloseTime:     "22:00",
		AvailableDays: []int{0, 1, 2, 3, 4, 5, 6},
		HourlyRate:    9.50,
	}
}

// ────────────────────────────────────────────────
// Tests for Create()
// ────────────────────────────────────────────────

func TestCreate_AppliesDefaults(t *testing.T) {
	var created *model.Listing
	repo := &mockListingRepository{
		createFunc: func(ctx context.Context, l *model.Listing) error {
			created = l
			return nil
		},
	}
	service := newTestService(repo)

	l := &model.Listing{
		OwnerPhone: "+14155550100",
		Street:     "1720 Market Street",
		City:       "San Francisco",
		Region:     "CA",
		PostalCode: "94102",
		HourlyRate: 9.50,
	}

	if err := service.Create(context.Background(), l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected repository create to be called")
	}

	if created.OpenTime != "08:00" || created.CloseTime != "20:00" {
		t.Errorf("expected default hours 08:00-20:00, got %s-%s", created.OpenTime, created.CloseTime)
	}
	if created.TimeZone != "America/Los_Angeles" {
		t.Errorf("expected US timezone inferred from phone, got %q", created.TimeZone)
	}
	if len(created.AvailableDays) != 5 || created.AvailableDays[0] != 1 {
		t.Errorf("expected US weekday defaults [1 2 3 4 5], got %v", created.AvailableDays)
	}
	if !created.Active {
		t.Error("expected new listing to be active")
	}
}

func TestCreate_IsraeliPhoneGetsIsraeliDefaults(t *testing.T) {
	var created *model.Listing
	repo := &mockListingRepository{
		createFunc: func(ctx context.Context, l *model.Listing) error {
			created = l
			return nil
		},
	}
	service := newTestService(repo)

	l := validListing()
	l.OwnerPhone = "+972541234567"
	l.AvailableDays = nil

	if err := service.Create(context.Background(), l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.TimeZone != "Asia/Jerusalem" {
		t.Errorf("expected Asia/Jerusalem, got %q", created.TimeZone)
	}
	if len(created.AvailableDays) != 5 || created.AvailableDays[0] != 0 || created.AvailableDays[4] != 4 {
		t.Errorf("expected Sunday-Thursday defaults [0 1 2 3 4], got %v", created.AvailableDays)
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	service := newTestService(&mockListingRepository{})

	l := validListing()
	l.OwnerPhone = "not-a-phone"

	err := service.Create(context.Background(), l)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected code %q, got %q", apperrors.CodeValidation, appErr.Code)
	}
}

func TestCreate_DuplicateAddressRejected(t *testing.T) {
	existing := validListing()
	existing.ID = "existing-id"

	repo := &mockListingRepository{
		findByOwnerPhoneFunc: func(ctx context.Context, phone string) ([]*model.Listing, error) {
			return []*model.Listing{existing}, nil
		},
	}
	service := newTestService(repo)

	err := service.Create(context.Background(), validListing())
	if err == nil {
		t.Fatal("expected conflict error for duplicate address")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected code %q, got %q", apperrors.CodeConflict, appErr.Code)
	}
}

func TestCreate_SanitizesFields(t *testing.T) {
	var created *model.Listing
	repo := &mockListingRepository{
		createFunc: func(ctx context.Context, l *model.Listing) error {
			created = l
			return nil
		},
	}
	service := newTestService(repo)

	l := validListing()
	l.Street = "  1720   Market Street "
	l.PostalCode = "941 02"
	l.AvailableDays = []int{5, 5, 1, 3, 9, -1}
	l.HourlyRate = 5000

	if err := service.Create(context.Background(), l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Street != "1720 Market Street" {
		t.Errorf("expected normalized street, got %q", created.Street)
	}
	if created.PostalCode != "94102" {
		t.Errorf("expected collapsed postal code, got %q", created.PostalCode)
	}
	if len(created.AvailableDays) != 3 || created.AvailableDays[0] != 1 || created.AvailableDays[2] != 5 {
		t.Errorf("expected deduplicated sorted weekdays [1 3 5], got %v", created.AvailableDays)
	}
	if created.HourlyRate != 1000 {
		t.Errorf("expected rate clamped to 1000, got %.2f", created.HourlyRate)
	}
}

// ────────────────────────────────────────────────
// Tests for GetByID()
// ────────────────────────────────────────────────

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return nil, fmt.Errorf("%w: %s", listingserrors.ErrNotFound, id)
		},
	}
	service := newTestService(repo)

	_, err := service.GetByID(context.Background(), "missing-id")
	if err == nil {
		t.Fatal("expected not found error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected code %q, got %q", apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
	}
}

func TestGetByID_InvalidID(t *testing.T) {
	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return nil, fmt.Errorf("%w: %s", listingserrors.ErrInvalidID, id)
		},
	}
	service := newTestService(repo)

	_, err := service.GetByID(context.Background(), "!!!")
	if err == nil {
		t.Fatal("expected invalid input error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %q, got %q", apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
	}
}

func TestGetByID_EmptyID(t *testing.T) {
	service := newTestService(&mockListingRepository{})

	_, err := service.GetByID(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for empty ID")
	}
}

// ────────────────────────────────────────────────
// Tests for GetAll()
// ────────────────────────────────────────────────

func TestGetAll_ConcurrentCountAndFind(t *testing.T) {
	repo := &mockListingRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			time.Sleep(10 * time.Millisecond)
			return 42, nil
		},
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Listing, error) {
			time.Sleep(10 * time.Millisecond)
			return []*model.Listing{validListing(), validListing()}, nil
		},
	}
	service := newTestService(repo)

	for i := 0; i < 10; i++ {
		listings, count, err := service.GetAll(context.Background(), 10, 0)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		if count != 42 {
			t.Errorf("iteration %d: expected count 42, got %d", i, count)
		}
		if len(listings) != 2 {
			t.Errorf("iteration %d: expected 2 listings, got %d", i, len(listings))
		}
	}
}

func TestGetAll_NormalizesPagination(t *testing.T) {
	repo := &mockListingRepository{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Listing, error) {
			if limit <= 0 {
				t.Errorf("limit should be positive after normalization, got %d", limit)
			}
			if offset < 0 {
				t.Errorf("offset should be non-negative after normalization, got %d", offset)
			}
			return []*model.Listing{}, nil
		},
	}
	service := newTestService(repo)

	if _, _, err := service.GetAll(context.Background(), -5, -10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ────────────────────────────────────────────────
// Tests for Update()
// ────────────────────────────────────────────────

func TestUpdate_MergesOntoExisting(t *testing.T) {
	existing := validListing()
	existing.ID = "507f1f77bcf86cd799439011"
	existing.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var updated *model.Listing
	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, id string, l *model.Listing) (*mongo.UpdateResult, error) {
			updated = l
			return &mongo.UpdateResult{MatchedCount: 1}, nil
		},
	}
	service := newTestService(repo)

	newRate := 12.0
	inactive := false
	err := service.Update(context.Background(), existing.ID, &model.ListingUpdate{
		HourlyRate: &newRate,
		Active:     &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.HourlyRate != 12.0 {
		t.Errorf("expected updated rate 12.0, got %.2f", updated.HourlyRate)
	}
	if updated.Active {
		t.Error("expected listing deactivated")
	}
	if updated.Street != existing.Street {
		t.Errorf("expected unchanged street, got %q", updated.Street)
	}
	if updated.ID != existing.ID {
		t.Errorf("expected ID preserved, got %q", updated.ID)
	}
	if !updated.CreatedAt.Equal(existing.CreatedAt) {
		t.Errorf("expected CreatedAt preserved, got %v", updated.CreatedAt)
	}
}

func TestUpdate_InvalidPhoneFailsValidation(t *testing.T) {
	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return validListing(), nil
		},
	}
	service := newTestService(repo)

	err := service.Update(context.Background(), "some-id", &model.ListingUpdate{
		OwnerPhone: "garbage",
	})
	if err == nil {
		t.Fatal("expected validation error for unparseable phone")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Errorf("expected code %q, got %q", apperrors.CodeValidation, apperrors.AsAppError(err).Code)
	}
}

func TestUpdate_InvalidWindowRejected(t *testing.T) {
	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return validListing(), nil
		},
	}
	service := newTestService(repo)

	err := service.Update(context.Background(), "some-id", &model.ListingUpdate{
		OpenTime:  "21:00",
		CloseTime: "09:00",
	})
	if err == nil {
		t.Fatal("expected validation error for inverted window")
	}
}

// ────────────────────────────────────────────────
// Tests for share tokens
// ────────────────────────────────────────────────

func TestShareToken_RoundTrip(t *testing.T) {
	l := validListing()
	l.ID = "507f1f77bcf86cd799439011"

	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			if id != l.ID {
				return nil, fmt.Errorf("%w: %s", listingserrors.ErrNotFound, id)
			}
			return l, nil
		},
	}
	service := newTestService(repo)

	token, err := service.ShareToken(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("unexpected error creating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	resolved, err := service.ResolveShareToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error resolving token: %v", err)
	}
	if resolved.ID != l.ID {
		t.Errorf("expected listing %q, got %q", l.ID, resolved.ID)
	}
}

func TestResolveShareToken_OwnerChangedInvalidatesToken(t *testing.T) {
	l := validListing()
	l.ID = "507f1f77bcf86cd799439011"

	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return l, nil
		},
	}
	service := newTestService(repo)

	token, err := service.ShareToken(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("unexpected error creating token: %v", err)
	}

	l.OwnerPhone = "+14155559999"

	if _, err := service.ResolveShareToken(context.Background(), token); err == nil {
		t.Fatal("expected token to be rejected after ownership change")
	}
}

func TestResolveShareToken_GarbageToken(t *testing.T) {
	service := newTestService(&mockListingRepository{})

	if _, err := service.ResolveShareToken(context.Background(), "not-a-real-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
