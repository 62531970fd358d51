package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
)

type adminDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d adminDoc) toDomain() domain.Admin {
	return domain.Admin{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

type adminsRepo struct {
	s *Store
}

func (r adminsRepo) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	var doc adminDoc
	err := r.s.db.Collection(colAdmins).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return domain.Admin{}, mapError(err, "get admin by id")
	}
	return doc.toDomain(), nil
}

func (r adminsRepo) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	var doc adminDoc
	err := r.s.db.Collection(colAdmins).
		FindOne(ctx, bson.M{"email": strings.ToLower(email)}).
		Decode(&doc)
	if err != nil {
		return domain.Admin{}, mapError(err, "get admin by email")
	}
	return doc.toDomain(), nil
}

func (r adminsRepo) Create(ctx context.Context, a domain.Admin) error {
	_, err := r.s.db.Collection(colAdmins).InsertOne(ctx, adminDoc{
		ID:        a.ID,
		Name:      a.Name,
		Email:     strings.ToLower(a.Email),
		Password:  a.PasswordHash,
		CreatedAt: a.CreatedAt,
	})
	return mapError(err, "create admin")
}
