package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	listingserrors "driveway/internal/listings/errors"
	"driveway/internal/listings/repository"
	"driveway/internal/listings/validator"
	"driveway/pkg/config"
	apperrors "driveway/pkg/errors"
	"driveway/pkg/locale"
	"driveway/pkg/model"
	"driveway/pkg/sanitizer"
	"driveway/pkg/sealer"

	"go.mongodb.org/mongo-driver/mongo"
)

type ListingService interface {
	Create(ctx context.Context, l *model.Listing) error
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Listing, int64, error)
	GetActive(ctx context.Context) ([]*model.Listing, error)
	GetByOwnerPhone(ctx context.Context, phone string) ([]*model.Listing, error)
	Search(ctx context.Context, city string, limit int, offset int64) ([]*model.Listing, error)
	Update(ctx context.Context, id string, updates *model.ListingUpdate) error
	Delete(ctx context.Context, id string) error

	ShareToken(ctx context.Context, id string) (string, error)
	ResolveShareToken(ctx context.Context, token string) (*model.Listing, error)
}

type listingService struct {
	repo      repository.ListingRepository
	validator *validator.ListingValidator
	cfg       *config.Config
}

func NewListingService(
	repo repository.ListingRepository,
	validator *validator.ListingValidator,
	cfg *config.Config,
) ListingService {
	return &listingService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *listingService) Create(ctx context.Context, l *model.Listing) error {
	s.sanitize(l)
	s.applyDefaultsForNewListing(l)

	if err := s.validator.Validate(l); err != nil {
		s.cfg.Log.Warn("Listing validation failed",
			"street", l.Street,
			"owner_phone", l.OwnerPhone,
			"error", err,
		)
		return apperrors.Validation("Listing validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		existing, err := s.repo.FindByOwnerPhone(sessCtx, l.OwnerPhone)
		if err != nil {
			return fmt.Errorf("failed to check for duplicates: %w", err)
		}

		for _, existingListing := range existing {
			if s.isDuplicate(l, existingListing) {
				return apperrors.Conflict(fmt.Sprintf(
					"Listing at this address already exists (id: %s)",
					existingListing.ID,
				))
			}
		}

		if err := s.repo.Create(sessCtx, l); err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}

		return nil
	})

	if err != nil {
		s.cfg.Log.Error("Failed to create listing",
			"street", l.Street,
			"owner_phone", l.OwnerPhone,
			"error", err,
		)
		return err
	}

	s.cfg.Log.Info("Listing created successfully",
		"id", l.ID,
		"address", l.FullAddress(),
		"owner_phone", l.OwnerPhone,
		"timezone", l.TimeZone,
	)

	return nil
}

func (s *listingService) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Listing ID cannot be empty")
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Listing", id)
		}
		if errors.Is(err, listingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid listing ID format")
		}
		s.cfg.Log.Error("Failed to get listing by ID",
			"id", id,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve listing", err)
	}

	return l, nil
}

func (s *listingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Listing, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var listings []*model.Listing
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
		defer cancel()
		count, err = s.repo.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count listings", "error", err)
			errCount = apperrors.Internal("Failed to count listings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
		defer cancel()
		listings, err = s.repo.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get all listings",
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve listings", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return listings, count, nil
}

func (s *listingService) GetActive(ctx context.Context) ([]*model.Listing, error) {
	listings, err := s.repo.FindActive(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get active listings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve active listings", err)
	}

	return listings, nil
}

func (s *listingService) GetByOwnerPhone(ctx context.Context, phone string) ([]*model.Listing, error) {
	if phone == "" {
		return nil, apperrors.InvalidInput("Owner phone number cannot be empty")
	}

	phone = sanitizer.NormalizePhone(phone)

	listings, err := s.repo.FindByOwnerPhone(ctx, phone)
	if err != nil {
		s.cfg.Log.Error("Failed to get listings by owner phone",
			"phone", phone,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve listings by phone", err)
	}

	return listings, nil
}

func (s *listingService) Search(ctx context.Context, city string, limit int, offset int64) ([]*model.Listing, error) {
	city = sanitizer.NormalizeCity(city)
	if city == "" {
		return nil, apperrors.InvalidInput("Search city cannot be empty")
	}

	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	listings, err := s.repo.Search(ctx, city, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to search listings",
			"city", city,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to search listings", err)
	}

	s.cfg.Log.Debug("Listings search completed",
		"city", city,
		"results_count", len(listings),
	)

	return listings, nil
}

func (s *listingService) Update(ctx context.Context, id string, updates *model.ListingUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Listing ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Listing", id)
		}
		if errors.Is(err, listingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid listing ID format")
		}
		return apperrors.Internal("Failed to check listing existence", err)
	}

	s.sanitizeUpdate(updates)
	merged := s.mergeListingUpdates(existing, updates)
	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Listing validation failed",
			"id", id,
			"street", merged.Street,
			"error", err,
		)
		return apperrors.Validation("Listing validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if _, err := s.repo.Update(ctx, id, merged); err != nil {
		s.cfg.Log.Error("Failed to update listing",
			"id", id,
			"error", err,
		)
		return apperrors.Internal("Failed to update listing", err)
	}
	s.cfg.Log.Info("Listing updated successfully",
		"id", id,
		"address", merged.FullAddress(),
	)

	return nil
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Listing ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Listing", id)
		}
		if errors.Is(err, listingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid listing ID format")
		}
		s.cfg.Log.Error("Failed to delete listing",
			"id", id,
			"error", err,
		)
		return apperrors.Internal("Failed to delete listing", err)
	}

	s.cfg.Log.Info("Listing deleted successfully", "id", id)

	return nil
}

func (s *listingService) ShareToken(ctx context.Context, id string) (string, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	token, err := sealer.CreateShareToken(l.OwnerPhone, l.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to create share token", "id", id, "error", err)
		return "", apperrors.Internal("Failed to create share token", err)
	}

	return token, nil
}

func (s *listingService) ResolveShareToken(ctx context.Context, token string) (*model.Listing, error) {
	if token == "" {
		return nil, apperrors.InvalidInput("Share token cannot be empty")
	}

	ownerPhone, listingID, err := sealer.ParseShareToken(token)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid share token")
	}

	l, err := s.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	// Token owner must still match. A listing transferred to a new owner
	// invalidates previously issued links.
	if l.OwnerPhone != ownerPhone {
		return nil, apperrors.InvalidInput("Invalid share token")
	}

	return l, nil
}

func (s *listingService) sanitize(l *model.Listing) {
	l.OwnerPhone = sanitizer.NormalizePhone(l.OwnerPhone)
	l.Street = sanitizer.NormalizeStreet(l.Street)
	l.City = sanitizer.NormalizeCity(l.City)
	l.Region = sanitizer.NormalizeRegion(l.Region)
	l.PostalCode = sanitizer.NormalizePostalCode(l.PostalCode)
	l.OpenTime = sanitizer.TrimAndNormalize(l.OpenTime)
	l.CloseTime = sanitizer.TrimAndNormalize(l.CloseTime)
	l.AvailableDays = sanitizer.NormalizeWeekdays(l.AvailableDays)
	l.HourlyRate = sanitizer.ClampHourlyRate(l.HourlyRate, s.cfg.MaxHourlyRate)
	l.PhotoURL = sanitizer.NormalizeURL(l.PhotoURL)
	l.TimeZone = sanitizer.TrimAndNormalize(l.TimeZone)
}

func (s *listingService) sanitizeUpdate(updates *model.ListingUpdate) {
	if updates.OwnerPhone != "" {
		updates.OwnerPhone = sanitizer.NormalizePhone(updates.OwnerPhone)
		if updates.OwnerPhone == "" {
			updates.OwnerPhone = "invalid_result"
		}
	}
	if updates.Street != "" {
		updates.Street = sanitizer.NormalizeStreet(updates.Street)
	}
	if updates.City != "" {
		updates.City = sanitizer.NormalizeCity(updates.City)
	}
	if updates.Region != "" {
		updates.Region = sanitizer.NormalizeRegion(updates.Region)
	}
	if updates.PostalCode != "" {
		updates.PostalCode = sanitizer.NormalizePostalCode(updates.PostalCode)
	}
	if updates.OpenTime != "" {
		updates.OpenTime = sanitizer.TrimAndNormalize(updates.OpenTime)
	}
	if updates.CloseTime != "" {
		updates.CloseTime = sanitizer.TrimAndNormalize(updates.CloseTime)
	}
	if updates.AvailableDays != nil {
		if len(updates.AvailableDays) == 0 {
			s.cfg.Log.Warn("Attempted to update available_days with empty array")
		} else {
			updates.AvailableDays = sanitizer.NormalizeWeekdays(updates.AvailableDays)
		}
	}
	if updates.HourlyRate != nil {
		clamped := sanitizer.ClampHourlyRate(*updates.HourlyRate, s.cfg.MaxHourlyRate)
		updates.HourlyRate = &clamped
	}
	if updates.PhotoURL != nil {
		normalized := sanitizer.NormalizeURL(*updates.PhotoURL)
		updates.PhotoURL = &normalized
	}
	if updates.TimeZone != "" {
		updates.TimeZone = sanitizer.TrimAndNormalize(updates.TimeZone)
	}
}

func (s *listingService) applyDefaultsForNewListing(l *model.Listing) {
	if l.TimeZone == "" {
		l.TimeZone = locale.InferTimezoneFromPhone(l.OwnerPhone)
	}
	if l.OpenTime == "" {
		l.OpenTime = s.cfg.DefaultOpenTime
	}
	if l.CloseTime == "" {
		l.CloseTime = s.cfg.DefaultCloseTime
	}
	if len(l.AvailableDays) == 0 {
		if locale.DetectRegion(l.TimeZone) == "IL" {
			l.AvailableDays = s.cfg.DefaultAvailableDaysIsrael
		} else {
			l.AvailableDays = s.cfg.DefaultAvailableDaysUs
		}
	}

	// New listings go live immediately; owners deactivate explicitly.
	l.Active = true
}

func (s *listingService) mergeListingUpdates(existing *model.Listing, updates *model.ListingUpdate) *model.Listing {
	merged := *existing

	if updates.OwnerPhone != "" {
		merged.OwnerPhone = updates.OwnerPhone
	}
	if updates.Street != "" {
		merged.Street = updates.Street
	}
	if updates.City != "" {
		merged.City = updates.City
	}
	if updates.Region != "" {
		merged.Region = updates.Region
	}
	if updates.PostalCode != "" {
		merged.PostalCode = updates.PostalCode
	}
	if updates.OpenTime != "" {
		merged.OpenTime = updates.OpenTime
	}
	if updates.CloseTime != "" {
		merged.CloseTime = updates.CloseTime
	}
	if updates.AvailableDays != nil {
		merged.AvailableDays = updates.AvailableDays
	}
	if updates.HourlyRate != nil {
		merged.HourlyRate = *updates.HourlyRate
	}
	if updates.PhotoURL != nil {
		merged.PhotoURL = *updates.PhotoURL
	}
	if updates.Active != nil {
		merged.Active = *updates.Active
	}
	if updates.TimeZone != "" {
		merged.TimeZone = updates.TimeZone
	}

	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt

	return &merged
}

func (s *listingService) isDuplicate(newListing, existingListing *model.Listing) bool {
	return strings.EqualFold(newListing.Street, existingListing.Street) &&
		strings.EqualFold(newListing.City, existingListing.City) &&
		strings.EqualFold(newListing.PostalCode, existingListing.PostalCode)
}
