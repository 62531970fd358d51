package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
)

type workshopRegDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	College   string    `bson:"college"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d workshopRegDoc) toDomain() domain.WorkshopRegistration {
	return domain.WorkshopRegistration{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		College:   d.College,
		CreatedAt: d.CreatedAt,
	}
}

type workshopRepo struct {
	s *Store
}

func (r workshopRepo) Create(ctx context.Context, reg domain.WorkshopRegistration) error {
	_, err := r.s.db.Collection(colWorkshopRegs).InsertOne(ctx, workshopRegDoc{
		ID:        reg.ID,
		UserID:    reg.UserID,
		Name:      reg.Name,
		Email:     strings.ToLower(reg.Email),
		Phone:     reg.Phone,
		College:   reg.College,
		CreatedAt: reg.CreatedAt,
	})
	return mapError(err, "create workshop registration")
}

func (r workshopRepo) GetByUserID(ctx context.Context, userID string) (domain.WorkshopRegistration, error) {
	var doc workshopRegDoc
	err := r.s.db.Collection(colWorkshopRegs).
		FindOne(ctx, bson.M{"userId": userID}).
		Decode(&doc)
	if err != nil {
		return domain.WorkshopRegistration{}, mapError(err, "get workshop registration by user")
	}
	return doc.toDomain(), nil
}

func (r workshopRepo) GetByEmail(ctx context.Context, email string) (domain.WorkshopRegistration, error) {
	var doc workshopRegDoc
	err := r.s.db.Collection(colWorkshopRegs).
		FindOne(ctx, bson.M{"email": strings.ToLower(email)}).
		Decode(&doc)
	if err != nil {
		return domain.WorkshopRegistration{}, mapError(err, "get workshop registration by email")
	}
	return doc.toDomain(), nil
}

func (r workshopRepo) List(ctx context.Context) ([]domain.WorkshopRegistration, error) {
	cur, err := r.s.db.Collection(colWorkshopRegs).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list workshop registrations")
	}

	var docs []workshopRegDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode workshop registrations")
	}

	regs := make([]domain.WorkshopRegistration, 0, len(docs))
	for _, d := range docs {
		regs = append(regs, d.toDomain())
	}
	return regs, nil
}

func (r workshopRepo) Delete(ctx context.Context, id string) error {
	_, err := r.s.db.Collection(colWorkshopRegs).DeleteOne(ctx, bson.M{"_id": id})
	return mapError(err, "delete workshop registration")
}

func (r workshopRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.s.db.Collection(colWorkshopRegs).CountDocuments(ctx, bson.M{})
	return n, mapError(err, "count workshop registrations")
}
