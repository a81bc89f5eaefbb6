package service

import (
	"context"
	"strings"
	"sync"

	"driveway/pkg/config"
	"driveway/pkg/kafka"
	"driveway/pkg/model"
)

// Stats is a point-in-time snapshot of the aggregated query analytics.
type Stats struct {
	TotalQueries    int64
	NoResultQueries int64
	TopLocations    map[string]int64
}

// InsightsService consumes resolved-query events and maintains in-memory
// demand analytics: how often drivers search, where, and how often the
// marketplace has nothing to offer them.
type InsightsService interface {
	HandleMessage(ctx context.Context, msg kafka.Message) error
	Snapshot() Stats
}

type insightsService struct {
	cfg *config.Config

	mu              sync.RWMutex
	totalQueries    int64
	noResultQueries int64
	locationCounts  map[string]int64
}

func NewInsightsService(cfg *config.Config) InsightsService {
	return &insightsService{
		cfg:            cfg,
		locationCounts: make(map[string]int64),
	}
}

// HandleMessage is the Kafka consumer handler for query events. Malformed
// payloads are permanent failures and go straight to the DLQ.
func (s *insightsService) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var event model.QueryEvent
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("invalid query event format", err)
	}

	if event.QueryID == "" {
		return kafka.NewPermanentError("query event missing query_id", nil)
	}

	s.record(&event)

	s.cfg.Log.Info("Query event recorded",
		"query_id", event.QueryID,
		"location", event.Location,
		"match_count", event.MatchCount,
		"date", event.Date.Format("2006-01-02"),
		"event_id", msg.GetEventID(),
	)

	return nil
}

func (s *insightsService) record(event *model.QueryEvent) {
	location := strings.ToLower(strings.TrimSpace(event.Location))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalQueries++
	if event.MatchCount == 0 {
		s.noResultQueries++
	}
	if location != "" {
		s.locationCounts[location]++
	}
}

func (s *insightsService) Snapshot() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locations := make(map[string]int64, len(s.locationCounts))
	for k, v := range s.locationCounts {
		locations[k] = v
	}

	return Stats{
		TotalQueries:    s.totalQueries,
		NoResultQueries: s.noResultQueries,
		TopLocations:    locations,
	}
}
