// Package mongo is the durable store, backed by MongoDB. Construction
// connects, ensures the uniqueness indexes and seeds the default admin;
// a store that failed to construct is never handed to callers.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/pkg/cryptox"
	"github.com/CU-CodingClub/Main/pkg/idx"
)

const (
	colUsers            = "users"
	colAdmins           = "admins"
	colPasswordResets   = "passwordResets"
	colHackathonRegs    = "hackathonRegistrations"
	colHackathonMembers = "hackathonMembers"
	colWorkshopRegs     = "workshopRegistrations"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// NewStore connects to MongoDB under the caller's context, ensures indexes
// and seeds the default admin. The caller bounds the context with the
// promotion grace period.
func NewStore(ctx context.Context, uri, dbName string, logger *slog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	if err := s.seedDefaultAdmin(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := func(col, key string) error {
		_, err := s.db.Collection(col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("mongo: index %s.%s: %w", col, key, err)
		}
		return nil
	}

	if err := unique(colUsers, "email"); err != nil {
		return err
	}
	if err := unique(colAdmins, "email"); err != nil {
		return err
	}
	if err := unique(colHackathonRegs, "leaderId"); err != nil {
		return err
	}
	if err := unique(colWorkshopRegs, "email"); err != nil {
		return err
	}

	// Member lookups are by registration; not unique.
	_, err := s.db.Collection(colHackathonMembers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "registrationId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("mongo: index %s.registrationId: %w", colHackathonMembers, err)
	}
	return nil
}

func (s *Store) seedDefaultAdmin(ctx context.Context) error {
	_, err := s.Admins().GetByEmail(ctx, store.DefaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := cryptox.HashPasswordCost(store.DefaultAdminPassword, cryptox.SeedCost)
	if err != nil {
		return fmt.Errorf("mongo: hashing default admin password: %w", err)
	}

	admin := domain.Admin{
		ID:           idx.New().String(),
		Name:         store.DefaultAdminName,
		Email:        store.DefaultAdminEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Admins().Create(ctx, admin); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
		return err
	}

	s.logger.Info("default admin seeded", "email", store.DefaultAdminEmail)
	return nil
}

func (s *Store) Users() store.Users                   { return usersRepo{s} }
func (s *Store) Admins() store.Admins                 { return adminsRepo{s} }
func (s *Store) PasswordResets() store.PasswordResets { return resetsRepo{s} }
func (s *Store) Hackathon() store.Hackathon           { return hackathonRepo{s} }
func (s *Store) Workshop() store.Workshop             { return workshopRepo{s} }

func (s *Store) Stats(ctx context.Context) (domain.DashboardStats, error) {
	users, err := s.db.Collection(colUsers).CountDocuments(ctx, bson.M{})
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("mongo: count users: %w", err)
	}
	teams, err := s.db.Collection(colHackathonRegs).CountDocuments(ctx, bson.M{})
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("mongo: count hackathon registrations: %w", err)
	}
	participants, err := s.db.Collection(colWorkshopRegs).CountDocuments(ctx, bson.M{})
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("mongo: count workshop registrations: %w", err)
	}

	return domain.DashboardStats{
		TotalUsers:                users,
		TotalHackathonTeams:       teams,
		TotalWorkshopParticipants: participants,
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// mapError converts driver errors to the store's sentinel errors.
func mapError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrAlreadyExists
	default:
		return fmt.Errorf("mongo: %s: %w", op, err)
	}
}
