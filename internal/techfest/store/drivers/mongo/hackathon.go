package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
)

type hackathonRegDoc struct {
	ID            string    `bson:"_id"`
	TeamName      string    `bson:"teamName"`
	LeaderID      string    `bson:"leaderId"`
	LeaderName    string    `bson:"leaderName"`
	LeaderEmail   string    `bson:"leaderEmail"`
	LeaderPhone   string    `bson:"leaderPhone"`
	LeaderCollege string    `bson:"leaderCollege"`
	LeaderYear    string    `bson:"leaderYear"`
	CreatedAt     time.Time `bson:"createdAt"`
}

func (d hackathonRegDoc) toDomain() domain.HackathonRegistration {
	return domain.HackathonRegistration{
		ID:            d.ID,
		TeamName:      d.TeamName,
		LeaderID:      d.LeaderID,
		LeaderName:    d.LeaderName,
		LeaderEmail:   d.LeaderEmail,
		LeaderPhone:   d.LeaderPhone,
		LeaderCollege: d.LeaderCollege,
		LeaderYear:    d.LeaderYear,
		CreatedAt:     d.CreatedAt,
	}
}

type hackathonMemberDoc struct {
	ID             string `bson:"_id"`
	RegistrationID string `bson:"registrationId"`
	Name           string `bson:"name"`
	Email          string `bson:"email"`
	Phone          string `bson:"phone"`
}

func (d hackathonMemberDoc) toDomain() domain.HackathonMember {
	return domain.HackathonMember{
		ID:             d.ID,
		RegistrationID: d.RegistrationID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
	}
}

type hackathonRepo struct {
	s *Store
}

func (r hackathonRepo) CreateRegistration(ctx context.Context, reg domain.HackathonRegistration) error {
	_, err := r.s.db.Collection(colHackathonRegs).InsertOne(ctx, hackathonRegDoc{
		ID:            reg.ID,
		TeamName:      reg.TeamName,
		LeaderID:      reg.LeaderID,
		LeaderName:    reg.LeaderName,
		LeaderEmail:   reg.LeaderEmail,
		LeaderPhone:   reg.LeaderPhone,
		LeaderCollege: reg.LeaderCollege,
		LeaderYear:    reg.LeaderYear,
		CreatedAt:     reg.CreatedAt,
	})
	return mapError(err, "create hackathon registration")
}

func (r hackathonRepo) GetByLeaderID(ctx context.Context, leaderID string) (domain.HackathonRegistration, error) {
	var doc hackathonRegDoc
	err := r.s.db.Collection(colHackathonRegs).
		FindOne(ctx, bson.M{"leaderId": leaderID}).
		Decode(&doc)
	if err != nil {
		return domain.HackathonRegistration{}, mapError(err, "get hackathon registration by leader")
	}
	return doc.toDomain(), nil
}

func (r hackathonRepo) ListWithMembers(ctx context.Context) ([]domain.HackathonTeam, error) {
	cur, err := r.s.db.Collection(colHackathonRegs).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list hackathon registrations")
	}

	var regDocs []hackathonRegDoc
	if err := cur.All(ctx, &regDocs); err != nil {
		return nil, mapError(err, "decode hackathon registrations")
	}

	teams := make([]domain.HackathonTeam, 0, len(regDocs))
	for _, d := range regDocs {
		members, err := r.MembersByRegistration(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, domain.HackathonTeam{
			HackathonRegistration: d.toDomain(),
			Members:               members,
		})
	}
	return teams, nil
}

func (r hackathonRepo) DeleteRegistration(ctx context.Context, id string) error {
	_, err := r.s.db.Collection(colHackathonRegs).DeleteOne(ctx, bson.M{"_id": id})
	return mapError(err, "delete hackathon registration")
}

func (r hackathonRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.s.db.Collection(colHackathonRegs).CountDocuments(ctx, bson.M{})
	return n, mapError(err, "count hackathon registrations")
}

func (r hackathonRepo) AddMember(ctx context.Context, m domain.HackathonMember) error {
	_, err := r.s.db.Collection(colHackathonMembers).InsertOne(ctx, hackathonMemberDoc{
		ID:             m.ID,
		RegistrationID: m.RegistrationID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
	})
	return mapError(err, "add hackathon member")
}

func (r hackathonRepo) MembersByRegistration(ctx context.Context, registrationID string) ([]domain.HackathonMember, error) {
	cur, err := r.s.db.Collection(colHackathonMembers).Find(ctx,
		bson.M{"registrationId": registrationID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list hackathon members")
	}

	var docs []hackathonMemberDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode hackathon members")
	}

	members := make([]domain.HackathonMember, 0, len(docs))
	for _, d := range docs {
		members = append(members, d.toDomain())
	}
	return members, nil
}

func (r hackathonRepo) DeleteMembersByRegistration(ctx context.Context, registrationID string) error {
	_, err := r.s.db.Collection(colHackathonMembers).
		DeleteMany(ctx, bson.M{"registrationId": registrationID})
	return mapError(err, "delete hackathon members")
}
