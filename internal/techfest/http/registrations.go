package http

import (
	"net/http"

	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/pkg/httpx"
	"github.com/CU-CodingClub/Main/pkg/slogx"
)

type RegistrationHandler struct {
	RegistrationService *service.Registration
}

func (h *RegistrationHandler) HandleHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := httpx.UserID(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	req, ok := decode[hackathonRequest](w, r)
	if !ok {
		return
	}

	members := make([]service.MemberInput, 0, len(req.Members))
	for _, m := range req.Members {
		members = append(members, service.MemberInput{
			Name:  m.Name,
			Email: m.Email,
			Phone: m.Phone,
		})
	}

	team, err := h.RegistrationService.RegisterHackathon(ctx, userID, service.HackathonInput{
		TeamName:      req.TeamName,
		LeaderName:    req.LeaderName,
		LeaderEmail:   req.LeaderEmail,
		LeaderPhone:   req.LeaderPhone,
		LeaderCollege: req.LeaderCollege,
		LeaderYear:    req.LeaderYear,
		Members:       members,
	})
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Success      bool        `json:"success"`
		Message      string      `json:"message"`
		Registration teamPayload `json:"registration"`
	}{
		Success:      true,
		Message:      "Registration successful",
		Registration: toTeamPayload(team),
	})
}

func (h *RegistrationHandler) HandleWorkshop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := httpx.UserID(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	req, ok := decode[workshopRequest](w, r)
	if !ok {
		return
	}

	reg, err := h.RegistrationService.RegisterWorkshop(ctx, userID, service.WorkshopInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		College: req.College,
	})
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Success      bool            `json:"success"`
		Message      string          `json:"message"`
		Registration workshopPayload `json:"registration"`
	}{
		Success:      true,
		Message:      "Registration successful",
		Registration: toWorkshopPayload(reg),
	})
}
