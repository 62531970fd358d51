package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

type userDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Phone     *string   `bson:"phone,omitempty"`
	College   *string   `bson:"college,omitempty"`
	Year      *string   `bson:"year,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty"`
}

func toUserDoc(u domain.User) userDoc {
	return userDoc{
		ID:        u.ID,
		Name:      u.Name,
		Email:     strings.ToLower(u.Email),
		Password:  u.PasswordHash,
		Phone:     u.Phone,
		College:   u.College,
		Year:      u.Year,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Phone:        d.Phone,
		College:      d.College,
		Year:         d.Year,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type usersRepo struct {
	s *Store
}

func (r usersRepo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.s.db.Collection(colUsers).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list users")
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode users")
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	var doc userDoc
	err := r.s.db.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return domain.User{}, mapError(err, "get user by id")
	}
	return doc.toDomain(), nil
}

func (r usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	err := r.s.db.Collection(colUsers).
		FindOne(ctx, bson.M{"email": strings.ToLower(email)}).
		Decode(&doc)
	if err != nil {
		return domain.User{}, mapError(err, "get user by email")
	}
	return doc.toDomain(), nil
}

func (r usersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.s.db.Collection(colUsers).InsertOne(ctx, toUserDoc(u))
	return mapError(err, "create user")
}

func (r usersRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.College != nil {
		set["college"] = *upd.College
	}
	if upd.Year != nil {
		set["year"] = *upd.Year
	}

	var doc userDoc
	err := r.s.db.Collection(colUsers).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return domain.User{}, mapError(err, "update user")
	}
	return doc.toDomain(), nil
}

func (r usersRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	res, err := r.s.db.Collection(colUsers).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": passwordHash, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return mapError(err, "update user password")
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r usersRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.s.db.Collection(colUsers).CountDocuments(ctx, bson.M{})
	return n, mapError(err, "count users")
}
