package service

import (
	"context"
	"fmt"
	"time"

	"driveway/internal/assistant/resolver"
	"driveway/pkg/client"
	"driveway/pkg/config"
	apperrors "driveway/pkg/errors"
	"driveway/pkg/kafka"
	"driveway/pkg/model"

	"github.com/google/uuid"
)

// ListingSource supplies the active-listing snapshot a query is resolved
// against. Snapshots are fetched fresh per query.
type ListingSource interface {
	ActiveListings(ctx context.Context) ([]*model.Listing, error)
}

// EventPublisher publishes resolved-query analytics events.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type AssistantService interface {
	Answer(ctx context.Context, query string) (*resolver.Resolution, error)
}

type assistantService struct {
	listings  ListingSource
	publisher EventPublisher
	cfg       *config.Config
}

func NewAssistantService(listings ListingSource, publisher EventPublisher, cfg *config.Config) AssistantService {
	return &assistantService{
		listings:  listings,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *assistantService) Answer(ctx context.Context, query string) (*resolver.Resolution, error) {
	if query == "" {
		return nil, apperrors.InvalidInput("Query cannot be empty")
	}

	listings, err := s.listings.ActiveListings(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch active listings for query resolution",
			"error", err,
		)
		return nil, apperrors.Unavailable("listings")
	}

	resolution := resolver.Resolve(query, time.Now(), listings)

	s.cfg.Log.Info("Query resolved",
		"location", resolution.Location,
		"date", resolution.Date.Format("2006-01-02"),
		"window_start", resolution.WindowStart,
		"window_end", resolution.WindowEnd,
		"match_count", len(resolution.Matches),
	)

	s.publishQueryEvent(ctx, query, &resolution)

	return &resolution, nil
}

// publishQueryEvent emits the analytics event. Publishing is best-effort:
// a broker outage must never fail the query itself.
func (s *assistantService) publishQueryEvent(ctx context.Context, query string, resolution *resolver.Resolution) {
	if s.publisher == nil {
		return
	}

	event := model.QueryEvent{
		QueryID:     uuid.NewString(),
		Query:       query,
		Location:    resolution.Location,
		Date:        resolution.Date,
		WindowStart: resolution.WindowStart,
		WindowEnd:   resolution.WindowEnd,
		MatchCount:  len(resolution.Matches),
		Answer:      resolution.Answer,
		ResolvedAt:  time.Now().UTC(),
	}

	msg := kafka.NewMessage().
		WithKey(event.QueryID).
		WithValue(event).
		WithEventType(model.QueryEventType).
		WithSchemaVersion(model.QueryEventSchemaVersion).
		WithSource("assistant").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish query event",
			"query_id", event.QueryID,
			"error", err,
		)
	}
}

// HTTPListingSource adapts the listings service HTTP client to the
// ListingSource interface.
type HTTPListingSource struct {
	client *client.ListingClient
}

func NewHTTPListingSource(c *client.ListingClient) *HTTPListingSource {
	return &HTTPListingSource{client: c}
}

func (s *HTTPListingSource) ActiveListings(ctx context.Context) ([]*model.Listing, error) {
	resp, err := s.client.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active listings: %w", err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("listings service returned status %d: %s", resp.StatusCode, client.GetErrorMessage(resp))
	}

	return s.client.DecodeActiveListings(resp)
}
