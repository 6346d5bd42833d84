package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/study-room/studybot/internal/domain"
	"github.com/study-room/studybot/internal/repository"
)

// RequestService owns the material-request collection.
type RequestService struct {
	requests *mongo.Collection
}

func NewRequestService(c *repository.Collections) *RequestService {
	return &RequestService{requests: c.Requests}
}

// Save inserts a new request as pending.
func (s *RequestService) Save(ctx context.Context, r *domain.Request) error {
	r.Status = domain.RequestPending
	r.RequestDate = time.Now()
	if _, err := s.requests.InsertOne(ctx, r); err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

func (s *RequestService) ListPending(ctx context.Context, limit int64) ([]domain.Request, error) {
	cur, err := s.requests.Find(ctx,
		bson.M{"status": domain.RequestPending},
		options.Find().SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("find pending requests: %w", err)
	}
	var out []domain.Request
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	return out, nil
}

func (s *RequestService) CountPending(ctx context.Context) (int64, error) {
	return s.requests.CountDocuments(ctx, bson.M{"status": domain.RequestPending})
}
