package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
)

type resetDoc struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

type resetsRepo struct {
	s *Store
}

func (r resetsRepo) Create(ctx context.Context, reset domain.PasswordReset) error {
	_, err := r.s.db.Collection(colPasswordResets).InsertOne(ctx, resetDoc{
		ID:        reset.ID,
		Email:     strings.ToLower(reset.Email),
		Token:     reset.Token,
		ExpiresAt: reset.ExpiresAt,
	})
	return mapError(err, "create password reset")
}

func (r resetsRepo) GetByToken(ctx context.Context, token string) (domain.PasswordReset, error) {
	var doc resetDoc
	err := r.s.db.Collection(colPasswordResets).FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if err != nil {
		return domain.PasswordReset{}, mapError(err, "get password reset by token")
	}
	return domain.PasswordReset{
		ID:        doc.ID,
		Email:     doc.Email,
		Token:     doc.Token,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

func (r resetsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.s.db.Collection(colPasswordResets).DeleteOne(ctx, bson.M{"_id": id})
	return mapError(err, "delete password reset")
}
