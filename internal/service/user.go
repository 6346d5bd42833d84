package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
	"github.com/study-room/studybot/internal/repository"
)

// UserService owns the users collection.
type UserService struct {
	users *mongo.Collection
}

func NewUserService(c *repository.Collections) *UserService {
	return &UserService{users: c.Users}
}

// Upsert records the user on first sight and touches last-active on every
// later event, returning the stored record.
func (s *UserService) Upsert(ctx context.Context, telegramID int64, username, firstName, lastName string) (*domain.User, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"username":   username,
			"firstName":  firstName,
			"lastName":   lastName,
			"lastActive": now,
		},
		"$setOnInsert": bson.M{
			"joinDate":      now,
			"isActive":      true,
			"downloadCount": int64(0),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var u domain.User
	if err := s.users.FindOneAndUpdate(ctx, bson.M{"userId": telegramID}, update, opts).Decode(&u); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}

func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	var u domain.User
	err := s.users.FindOne(ctx, bson.M{"userId": telegramID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// IncrementDownloads bumps the user's personal download counter.
func (s *UserService) IncrementDownloads(ctx context.Context, telegramID int64) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"userId": telegramID},
		bson.M{"$inc": bson.M{"downloadCount": 1}},
	)
	if err != nil {
		return fmt.Errorf("increment download count: %w", err)
	}
	return nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{})
}

// CountActive counts users seen within the active window.
func (s *UserService) CountActive(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-config.ActiveUserWindow)
	return s.users.CountDocuments(ctx, bson.M{"lastActive": bson.M{"$gte": cutoff}})
}

// Recent lists the newest registrations.
func (s *UserService) Recent(ctx context.Context, limit int64) ([]domain.User, error) {
	return s.list(ctx, bson.D{{Key: "joinDate", Value: -1}}, limit)
}

// TopByDownloads lists the heaviest downloaders.
func (s *UserService) TopByDownloads(ctx context.Context, limit int64) ([]domain.User, error) {
	return s.list(ctx, bson.D{{Key: "downloadCount", Value: -1}}, limit)
}

func (s *UserService) list(ctx context.Context, sort bson.D, limit int64) ([]domain.User, error) {
	cur, err := s.users.Find(ctx, bson.M{}, options.Find().SetSort(sort).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var out []domain.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}
