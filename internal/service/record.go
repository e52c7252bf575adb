package service

import (
	"context"
	"time"

	"pathpilot/internal/domain"
)

const (
	// CareerListLimit caps GET /careers.
	CareerListLimit = 100

	fieldUserID    = "userId"
	fieldCreatedAt = "createdAt"
)

// RecordService stores and reads the caller-supplied documents. Bodies are
// persisted as given; only createdAt is server-assigned.
type RecordService interface {
	ListCareers(ctx context.Context) ([]domain.Document, error)
	CreateCareer(ctx context.Context, doc domain.Document) (string, error)
	CreateQuizResult(ctx context.Context, doc domain.Document) (string, error)
	ListQuizResults(ctx context.Context, userID string) ([]domain.Document, error)
}

type recordService struct {
	store domain.DocumentStore
	now   func() time.Time
}

// NewRecordService creates a new instance of recordService
func NewRecordService(store domain.DocumentStore) RecordService {
	return &recordService{store: store, now: time.Now}
}

func (s *recordService) ListCareers(ctx context.Context) ([]domain.Document, error) {
	return s.store.Find(ctx, domain.CollectionCareers, nil, domain.FindOptions{Limit: CareerListLimit})
}

func (s *recordService) CreateCareer(ctx context.Context, doc domain.Document) (string, error) {
	return s.store.Insert(ctx, domain.CollectionCareers, doc)
}

func (s *recordService) CreateQuizResult(ctx context.Context, doc domain.Document) (string, error) {
	record := make(domain.Document, len(doc)+1)
	for k, v := range doc {
		record[k] = v
	}
	record[fieldCreatedAt] = s.now().UTC()
	return s.store.Insert(ctx, domain.CollectionQuizResults, record)
}

func (s *recordService) ListQuizResults(ctx context.Context, userID string) ([]domain.Document, error) {
	return s.store.Find(ctx, domain.CollectionQuizResults,
		domain.Document{fieldUserID: userID},
		domain.FindOptions{Sort: []domain.SortField{{Field: fieldCreatedAt, Descending: true}}})
}
