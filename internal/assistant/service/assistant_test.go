package service

import (
	"context"
	"fmt"
	"testing"

	"driveway/pkg/config"
	apperrors "driveway/pkg/errors"
	"driveway/pkg/kafka"
	"driveway/pkg/logger"
	"driveway/pkg/model"
)

type mockListingSource struct {
	activeListingsFunc func(ctx context.Context) ([]*model.Listing, error)
}

func (m *mockListingSource) ActiveListings(ctx context.Context) ([]*model.Listing, error) {
	if m.activeListingsFunc != nil {
		return m.activeListingsFunc(ctx)
	}
	return []*model.Listing{}, nil
}

type mockPublisher struct {
	publishFunc func(ctx context.Context, msg kafka.Message) error
	published   []kafka.Message
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	m.published = append(m.published, msg)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, msg)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:     "info",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
	}
}

func activeMarketListing() *model.Listing {
	return &model.Listing{
		ID:            "listing-1",
		OwnerPhone:    "+14155550100",
		Street:        "1720 Market Street",
		City:          "San Francisco",
		Region:        "CA",
		PostalCode:    "94102",
		OpenTime:      "00:00",
		CloseTime:     "23:59",
		AvailableDays: []int{0, 1, 2, 3, 4, 5, 6},
		HourlyRate:    9.50,
		Active:        true,
	}
}

func TestAnswer_EmptyQuery(t *testing.T) {
	service := NewAssistantService(&mockListingSource{}, nil, testConfig())

	_, err := service.Answer(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for empty query")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %q, got %q", apperrors.CodeInvalidInput, appErr.Code)
	}
	if appErr.StatusCode() != 400 {
		t.Errorf("expected status 400, got %d", appErr.StatusCode())
	}
}

func TestAnswer_ListingSourceFailure(t *testing.T) {
	source := &mockListingSource{
		activeListingsFunc: func(ctx context.Context) ([]*model.Listing, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}
	service := NewAssistantService(source, nil, testConfig())

	_, err := service.Answer(context.Background(), "parking near market at 10am")
	if err == nil {
		t.Fatal("expected error when listing source fails")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeUnavailable {
		t.Errorf("expected code %q, got %q", apperrors.CodeUnavailable, appErr.Code)
	}
	if appErr.StatusCode() != 503 {
		t.Errorf("expected status 503, got %d", appErr.StatusCode())
	}
}

func TestAnswer_ResolvesAgainstSnapshot(t *testing.T) {
	source := &mockListingSource{
		activeListingsFunc: func(ctx context.Context) ([]*model.Listing, error) {
			return []*model.Listing{activeMarketListing()}, nil
		},
	}
	service := NewAssistantService(source, nil, testConfig())

	res, err := service.Answer(context.Background(), "parking near market at 10am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Location != "market" {
		t.Errorf("expected location %q, got %q", "market", res.Location)
	}
	if len(res.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(res.Matches))
	}
	want := "Yes, there is parking available at 1720 Market Street, San Francisco, CA 94102 for $9.50 per hour."
	if res.Answer != want {
		t.Errorf("answer = %q, want %q", res.Answer, want)
	}
}

func TestAnswer_PublishesQueryEvent(t *testing.T) {
	source := &mockListingSource{
		activeListingsFunc: func(ctx context.Context) ([]*model.Listing, error) {
			return []*model.Listing{activeMarketListing()}, nil
		},
	}
	publisher := &mockPublisher{}
	service := NewAssistantService(source, publisher, testConfig())

	query := "parking near market at 10am"
	res, err := service.Answer(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.published))
	}

	msg := publisher.published[0]
	if msg.GetEventType() != model.QueryEventType {
		t.Errorf("expected event type %q, got %q", model.QueryEventType, msg.GetEventType())
	}
	if msg.GetEventID() == "" {
		t.Error("expected non-empty event ID")
	}

	var event model.QueryEvent
	if err := msg.DecodeValue(&event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if event.Query != query {
		t.Errorf("expected query %q, got %q", query, event.Query)
	}
	if event.QueryID == "" {
		t.Error("expected non-empty query ID")
	}
	if event.QueryID != msg.Key {
		t.Errorf("expected message key to equal query ID, got key %q and ID %q", msg.Key, event.QueryID)
	}
	if event.MatchCount != 1 {
		t.Errorf("expected match count 1, got %d", event.MatchCount)
	}
	if event.Answer != res.Answer {
		t.Errorf("expected event answer %q, got %q", res.Answer, event.Answer)
	}
}

func TestAnswer_PublishFailureDoesNotFailQuery(t *testing.T) {
	source := &mockListingSource{
		activeListingsFunc: func(ctx context.Context) ([]*model.Listing, error) {
			return []*model.Listing{activeMarketListing()}, nil
		},
	}
	publisher := &mockPublisher{
		publishFunc: func(ctx context.Context, msg kafka.Message) error {
			return fmt.Errorf("broker unreachable")
		},
	}
	service := NewAssistantService(source, publisher, testConfig())

	res, err := service.Answer(context.Background(), "parking near market at 10am")
	if err != nil {
		t.Fatalf("expected query to succeed despite publish failure, got %v", err)
	}
	if len(res.Matches) != 1 {
		t.Errorf("expected 1 match, got %d", len(res.Matches))
	}
}

func TestAnswer_NilPublisherTolerated(t *testing.T) {
	service := NewAssistantService(&mockListingSource{}, nil, testConfig())

	res, err := service.Answer(context.Background(), "parking near market at 10am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Errorf("expected no matches for empty snapshot, got %d", len(res.Matches))
	}
}
