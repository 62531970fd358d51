package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/pkg/httpx"
)

// writeServiceError maps service sentinels to status codes and client
// messages. Anything unmapped is an infrastructure failure and is
// logged before a generic 500 goes out.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrInvalidAdminCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrResetInvalid):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid or expired reset token")
	case errors.Is(err, service.ErrTeamAlreadyRegistered):
		httpx.WriteError(w, http.StatusBadRequest, "You have already registered a team")
	case errors.Is(err, service.ErrDuplicateMemberEmail):
		httpx.WriteError(w, http.StatusBadRequest, "Duplicate email addresses found")
	case errors.Is(err, service.ErrWorkshopAlreadyRegistered):
		httpx.WriteError(w, http.StatusBadRequest, "You have already registered for the workshop")
	case errors.Is(err, service.ErrWorkshopEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "This email is already registered")
	default:
		log.Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
