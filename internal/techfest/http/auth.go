package http

import (
	"net/http"

	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/pkg/httpx"
	"github.com/CU-CodingClub/Main/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.Auth
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[signupRequest](w, r)
	if !ok {
		return
	}

	user, token, err := h.AuthService.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, slogx.FromContext(r.Context()), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userAuthResponse{
		Success: true,
		User:    toUserPayload(user),
		Token:   token,
		Message: "Account created successfully",
	})
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[loginRequest](w, r)
	if !ok {
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, slogx.FromContext(r.Context()), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userAuthResponse{
		Success: true,
		User:    toUserPayload(user),
		Token:   token,
		Message: "Login successful",
	})
}

func (h *AuthHandler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[loginRequest](w, r)
	if !ok {
		return
	}

	admin, token, err := h.AuthService.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, slogx.FromContext(r.Context()), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminAuthResponse{
		Success: true,
		Admin: adminPayload{
			ID:        admin.ID,
			Name:      admin.Name,
			Email:     admin.Email,
			CreatedAt: admin.CreatedAt,
		},
		Token:   token,
		Message: "Admin login successful",
	})
}

// HandleForgotPassword always reports success so callers cannot probe
// which emails have accounts.
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[forgotPasswordRequest](w, r)
	if !ok {
		return
	}

	if err := h.AuthService.ForgotPassword(r.Context(), req.Email); err != nil {
		writeServiceError(w, slogx.FromContext(r.Context()), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "If email exists, reset link will be sent",
	})
}

func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[resetPasswordRequest](w, r)
	if !ok {
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		writeServiceError(w, slogx.FromContext(r.Context()), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Password reset successfully",
	})
}
