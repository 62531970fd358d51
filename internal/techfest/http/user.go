package http

import (
	"net/http"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/pkg/httpx"
	"github.com/CU-CodingClub/Main/pkg/slogx"
)

type UserHandler struct {
	ProfileService      *service.Profile
	RegistrationService *service.Registration
}

// HandleRegistrations returns the caller's hackathon team and workshop
// registration, either of which may be null.
func (h *UserHandler) HandleRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := httpx.UserID(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	team, workshop, err := h.RegistrationService.UserRegistrations(ctx, userID)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	resp := struct {
		Success   bool             `json:"success"`
		Hackathon *teamPayload     `json:"hackathon"`
		Workshop  *workshopPayload `json:"workshop"`
	}{Success: true}

	if team != nil {
		p := toTeamPayload(*team)
		resp.Hackathon = &p
	}
	if workshop != nil {
		p := toWorkshopPayload(*workshop)
		resp.Workshop = &p
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdateProfile applies a partial update to the caller's account.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := httpx.UserID(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	req, ok := decode[updateProfileRequest](w, r)
	if !ok {
		return
	}

	user, err := h.ProfileService.Update(ctx, userID, domain.UserUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		College: req.College,
		Year:    req.Year,
	})
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Success bool        `json:"success"`
		User    userPayload `json:"user"`
		Message string      `json:"message"`
	}{
		Success: true,
		User:    toUserPayload(user),
		Message: "Profile updated successfully",
	})
}
