package memory

import (
	"context"
	"sort"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

type hackathonRepo struct {
	s *Store
}

func (r hackathonRepo) CreateRegistration(ctx context.Context, reg domain.HackathonRegistration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.hackathonRegs {
		if existing.LeaderID == reg.LeaderID {
			return store.ErrAlreadyExists
		}
	}
	r.s.hackathonRegs[reg.ID] = reg
	return nil
}

func (r hackathonRepo) GetByLeaderID(ctx context.Context, leaderID string) (domain.HackathonRegistration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, reg := range r.s.hackathonRegs {
		if reg.LeaderID == leaderID {
			return reg, nil
		}
	}
	return domain.HackathonRegistration{}, store.ErrNotFound
}

func (r hackathonRepo) ListWithMembers(ctx context.Context) ([]domain.HackathonTeam, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	teams := make([]domain.HackathonTeam, 0, len(r.s.hackathonRegs))
	for _, reg := range r.s.hackathonRegs {
		team := domain.HackathonTeam{HackathonRegistration: reg}
		for _, m := range r.s.hackathonMembers {
			if m.RegistrationID == reg.ID {
				team.Members = append(team.Members, m)
			}
		}
		sort.Slice(team.Members, func(i, j int) bool {
			return team.Members[i].ID < team.Members[j].ID
		})
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt.Before(teams[j].CreatedAt)
	})
	return teams, nil
}

func (r hackathonRepo) DeleteRegistration(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.hackathonRegs, id)
	return nil
}

func (r hackathonRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.hackathonRegs)), nil
}

func (r hackathonRepo) AddMember(ctx context.Context, m domain.HackathonMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.hackathonMembers[m.ID] = m
	return nil
}

func (r hackathonRepo) MembersByRegistration(ctx context.Context, registrationID string) ([]domain.HackathonMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var members []domain.HackathonMember
	for _, m := range r.s.hackathonMembers {
		if m.RegistrationID == registrationID {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})
	return members, nil
}

func (r hackathonRepo) DeleteMembersByRegistration(ctx context.Context, registrationID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, m := range r.s.hackathonMembers {
		if m.RegistrationID == registrationID {
			delete(r.s.hackathonMembers, id)
		}
	}
	return nil
}
