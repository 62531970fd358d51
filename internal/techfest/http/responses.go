package http

import (
	"time"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
)

// Payload shapes returned to clients. Password hashes never leave this
// package.

type userPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	College   *string   `json:"college"`
	Year      *string   `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserPayload(u domain.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		College:   u.College,
		Year:      u.Year,
		CreatedAt: u.CreatedAt,
	}
}

type adminPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type memberPayload struct {
	ID             string `json:"id"`
	RegistrationID string `json:"registrationId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type teamPayload struct {
	ID            string          `json:"id"`
	TeamName      string          `json:"teamName"`
	LeaderID      string          `json:"leaderId"`
	LeaderName    string          `json:"leaderName"`
	LeaderEmail   string          `json:"leaderEmail"`
	LeaderPhone   string          `json:"leaderPhone"`
	LeaderCollege string          `json:"leaderCollege"`
	LeaderYear    string          `json:"leaderYear"`
	CreatedAt     time.Time       `json:"createdAt"`
	Members       []memberPayload `json:"members"`
}

func toTeamPayload(t domain.HackathonTeam) teamPayload {
	members := make([]memberPayload, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, memberPayload{
			ID:             m.ID,
			RegistrationID: m.RegistrationID,
			Name:           m.Name,
			Email:          m.Email,
			Phone:          m.Phone,
		})
	}
	return teamPayload{
		ID:            t.ID,
		TeamName:      t.TeamName,
		LeaderID:      t.LeaderID,
		LeaderName:    t.LeaderName,
		LeaderEmail:   t.LeaderEmail,
		LeaderPhone:   t.LeaderPhone,
		LeaderCollege: t.LeaderCollege,
		LeaderYear:    t.LeaderYear,
		CreatedAt:     t.CreatedAt,
		Members:       members,
	}
}

type workshopPayload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	College   string    `json:"college"`
	CreatedAt time.Time `json:"createdAt"`
}

func toWorkshopPayload(r domain.WorkshopRegistration) workshopPayload {
	return workshopPayload{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		College:   r.College,
		CreatedAt: r.CreatedAt,
	}
}

type userAuthResponse struct {
	Success bool        `json:"success"`
	User    userPayload `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message"`
}

type adminAuthResponse struct {
	Success bool         `json:"success"`
	Admin   adminPayload `json:"admin"`
	Token   string       `json:"token"`
	Message string       `json:"message"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
