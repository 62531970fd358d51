package http

import (
	"net/http"

	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/pkg/httpx"
	"github.com/CU-CodingClub/Main/pkg/slogx"
)

type AdminHandler struct {
	AdminService *service.Admin
}

func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.AdminService.Stats(ctx)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, struct {
		Success                     bool  `json:"success"`
		TotalUsers                  int64 `json:"totalUsers"`
		TotalHackathonRegistrations int64 `json:"totalHackathonRegistrations"`
		TotalWorkshopRegistrations  int64 `json:"totalWorkshopRegistrations"`
	}{
		Success:                     true,
		TotalUsers:                  stats.TotalUsers,
		TotalHackathonRegistrations: stats.TotalHackathonTeams,
		TotalWorkshopRegistrations:  stats.TotalWorkshopParticipants,
	})
}

func (h *AdminHandler) HandleListHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	teams, err := h.AdminService.ListHackathon(ctx)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	payload := make([]teamPayload, 0, len(teams))
	for _, t := range teams {
		payload = append(payload, toTeamPayload(t))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, struct {
		Success bool          `json:"success"`
		Data    []teamPayload `json:"data"`
	}{Success: true, Data: payload})
}

func (h *AdminHandler) HandleListWorkshop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	regs, err := h.AdminService.ListWorkshop(ctx)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	payload := make([]workshopPayload, 0, len(regs))
	for _, reg := range regs {
		payload = append(payload, toWorkshopPayload(reg))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, struct {
		Success bool              `json:"success"`
		Data    []workshopPayload `json:"data"`
	}{Success: true, Data: payload})
}

func (h *AdminHandler) HandleExportHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	out, err := h.AdminService.ExportHackathonCSV(ctx)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	writeCSV(w, "hackathon_registrations.csv", out)
}

func (h *AdminHandler) HandleExportWorkshop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	out, err := h.AdminService.ExportWorkshopCSV(ctx)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	writeCSV(w, "workshop_registrations.csv", out)
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
