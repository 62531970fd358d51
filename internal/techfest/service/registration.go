package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/mail"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/pkg/idx"
)

// Registration handles hackathon team and workshop signups.
type Registration struct {
	store  store.Store
	mailer mail.Mailer
	logger *slog.Logger
	now    func() time.Time
}

func NewRegistration(st store.Store, mailer mail.Mailer, logger *slog.Logger) *Registration {
	return &Registration{
		store:  st,
		mailer: mailer,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// HackathonInput is a team signup as submitted by the leader.
type HackathonInput struct {
	TeamName      string
	LeaderName    string
	LeaderEmail   string
	LeaderPhone   string
	LeaderCollege string
	LeaderYear    string
	Members       []MemberInput
}

type MemberInput struct {
	Name  string
	Email string
	Phone string
}

// WorkshopInput is a single-participant workshop signup.
type WorkshopInput struct {
	Name    string
	Email   string
	Phone   string
	College string
}

// RegisterHackathon creates a team led by userID. A user leads at most
// one team, and the leader and member emails must be pairwise distinct
// ignoring case. Both checks run before anything is written.
func (s *Registration) RegisterHackathon(ctx context.Context, userID string, in HackathonInput) (domain.HackathonTeam, error) {
	_, err := s.store.Hackathon().GetByLeaderID(ctx, userID)
	if err == nil {
		return domain.HackathonTeam{}, ErrTeamAlreadyRegistered
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.HackathonTeam{}, err
	}

	seen := map[string]struct{}{normalizeEmail(in.LeaderEmail): {}}
	for _, m := range in.Members {
		key := normalizeEmail(m.Email)
		if _, dup := seen[key]; dup {
			return domain.HackathonTeam{}, ErrDuplicateMemberEmail
		}
		seen[key] = struct{}{}
	}

	reg := domain.HackathonRegistration{
		ID:            idx.New().String(),
		TeamName:      in.TeamName,
		LeaderID:      userID,
		LeaderName:    in.LeaderName,
		LeaderEmail:   normalizeEmail(in.LeaderEmail),
		LeaderPhone:   in.LeaderPhone,
		LeaderCollege: in.LeaderCollege,
		LeaderYear:    in.LeaderYear,
		CreatedAt:     s.now(),
	}
	if err := s.store.Hackathon().CreateRegistration(ctx, reg); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.HackathonTeam{}, ErrTeamAlreadyRegistered
		}
		return domain.HackathonTeam{}, err
	}

	members := make([]domain.HackathonMember, 0, len(in.Members))
	for _, m := range in.Members {
		member := domain.HackathonMember{
			ID:             idx.New().String(),
			RegistrationID: reg.ID,
			Name:           m.Name,
			Email:          normalizeEmail(m.Email),
			Phone:          m.Phone,
		}
		if err := s.store.Hackathon().AddMember(ctx, member); err != nil {
			s.logger.Warn("failed to add team member", "member", m.Name, "error", err)
			continue
		}
		members = append(members, member)
	}

	body := mail.HackathonConfirmationBody(reg.LeaderName, reg.TeamName, len(members)+1)
	if err := s.mailer.Send(ctx, reg.LeaderEmail, mail.SubjectHackathonConfirmed, body); err != nil {
		s.logger.Warn("failed to send hackathon confirmation", "email", reg.LeaderEmail, "error", err)
	}

	return domain.HackathonTeam{HackathonRegistration: reg, Members: members}, nil
}

// RegisterWorkshop signs userID up for the workshop. A user registers
// at most once, and an email is used by at most one registration.
func (s *Registration) RegisterWorkshop(ctx context.Context, userID string, in WorkshopInput) (domain.WorkshopRegistration, error) {
	if _, err := s.store.Workshop().GetByUserID(ctx, userID); err == nil {
		return domain.WorkshopRegistration{}, ErrWorkshopAlreadyRegistered
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.WorkshopRegistration{}, err
	}

	email := normalizeEmail(in.Email)
	if _, err := s.store.Workshop().GetByEmail(ctx, email); err == nil {
		return domain.WorkshopRegistration{}, ErrWorkshopEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.WorkshopRegistration{}, err
	}

	reg := domain.WorkshopRegistration{
		ID:        idx.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Email:     email,
		Phone:     in.Phone,
		College:   in.College,
		CreatedAt: s.now(),
	}
	if err := s.store.Workshop().Create(ctx, reg); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.WorkshopRegistration{}, ErrWorkshopEmailTaken
		}
		return domain.WorkshopRegistration{}, err
	}

	body := mail.WorkshopConfirmationBody(reg.Name, reg.Email, reg.College)
	if err := s.mailer.Send(ctx, reg.Email, mail.SubjectWorkshopConfirmed, body); err != nil {
		s.logger.Warn("failed to send workshop confirmation", "email", reg.Email, "error", err)
	}

	return reg, nil
}

// UserRegistrations returns the caller's hackathon team and workshop
// registration, either of which may be nil.
func (s *Registration) UserRegistrations(ctx context.Context, userID string) (*domain.HackathonTeam, *domain.WorkshopRegistration, error) {
	var team *domain.HackathonTeam
	reg, err := s.store.Hackathon().GetByLeaderID(ctx, userID)
	switch {
	case err == nil:
		members, err := s.store.Hackathon().MembersByRegistration(ctx, reg.ID)
		if err != nil {
			s.logger.Warn("failed to load team members", "registration_id", reg.ID, "error", err)
			members = []domain.HackathonMember{}
		}
		team = &domain.HackathonTeam{HackathonRegistration: reg, Members: members}
	case !errors.Is(err, store.ErrNotFound):
		return nil, nil, err
	}

	var workshop *domain.WorkshopRegistration
	wreg, err := s.store.Workshop().GetByUserID(ctx, userID)
	switch {
	case err == nil:
		workshop = &wreg
	case !errors.Is(err, store.ErrNotFound):
		return nil, nil, err
	}

	return team, workshop, nil
}
