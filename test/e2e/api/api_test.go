package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	httpapi "github.com/CU-CodingClub/Main/internal/techfest/http"
	"github.com/CU-CodingClub/Main/internal/techfest/mail"
	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/internal/techfest/store/drivers/memory"
	"github.com/CU-CodingClub/Main/pkg/jwtx"
)

// startServer brings up the full router on an httptest server backed by
// the in-memory store, the same wiring the app uses without Mongo.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	signer := jwtx.NewSigner("e2e-secret", 0)
	mailer := mail.LogMailer{Logger: logger}

	router := httpapi.NewRouter(signer, "e2e", logger)
	router.AuthService = service.NewAuth(st, signer, mailer, logger)
	router.ProfileService = service.NewProfile(st, logger)
	router.RegistrationService = service.NewRegistration(st, mailer, logger)
	router.AdminService = service.NewAdmin(st, logger)
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, map[string]any, http.Header) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	} else {
		decoded = map[string]any{"raw": string(raw)}
	}
	return resp.StatusCode, decoded, resp.Header
}

func TestFullEventFlow(t *testing.T) {
	srv := startServer(t)

	// Health comes up without any store interaction.
	code, body, _ := call(t, srv, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body["status"])

	// Participant signs up.
	code, body, _ = call(t, srv, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, code)
	userToken := body["token"].(string)
	require.NotEmpty(t, userToken)

	// Completes their profile.
	code, _, _ = call(t, srv, http.MethodPatch, "/api/user/profile", userToken, map[string]string{
		"phone":   "9876543210",
		"college": "CU",
		"year":    "3",
	})
	require.Equal(t, http.StatusOK, code)

	// Registers a hackathon team.
	code, body, _ = call(t, srv, http.MethodPost, "/api/hackathon/register", userToken, map[string]any{
		"teamName":      "Bit Flippers",
		"leaderName":    "Asha",
		"leaderEmail":   "asha@example.com",
		"leaderPhone":   "9876543210",
		"leaderCollege": "CU",
		"leaderYear":    "3",
		"members": []map[string]string{
			{"name": "Ravi", "email": "ravi@example.com", "phone": "9876500001"},
		},
	})
	require.Equal(t, http.StatusOK, code, body)

	// And the workshop.
	code, _, _ = call(t, srv, http.MethodPost, "/api/workshop/register", userToken, map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"phone":   "9876543210",
		"college": "CU",
	})
	require.Equal(t, http.StatusOK, code)

	// Their registrations page shows both.
	code, body, _ = call(t, srv, http.MethodGet, "/api/user/registrations", userToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body["hackathon"])
	require.NotNil(t, body["workshop"])

	// A user token cannot reach the dashboard.
	code, body, _ = call(t, srv, http.MethodGet, "/api/admin/stats", userToken, nil)
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "Invalid token type", body["message"])

	// The seeded admin logs in.
	code, body, _ = call(t, srv, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    store.DefaultAdminEmail,
		"password": store.DefaultAdminPassword,
	})
	require.Equal(t, http.StatusOK, code)
	adminToken := body["token"].(string)
	require.NotEmpty(t, adminToken)

	// Dashboard reflects the registrations.
	code, body, _ = call(t, srv, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1, body["totalUsers"])
	require.EqualValues(t, 1, body["totalHackathonRegistrations"])
	require.EqualValues(t, 1, body["totalWorkshopRegistrations"])

	// CSV exports carry the data.
	code, body, headers := call(t, srv, http.MethodGet, "/api/admin/export/hackathon", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "text/csv", headers.Get("Content-Type"))
	require.Contains(t, body["raw"], "Bit Flippers")
	require.Contains(t, body["raw"], "ravi@example.com")

	code, body, _ = call(t, srv, http.MethodGet, "/api/admin/export/workshop", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body["raw"], "asha@example.com")
}

func TestPasswordResetFlow(t *testing.T) {
	srv := startServer(t)

	code, _, _ := call(t, srv, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, code)

	// Forgot password never reveals whether the account exists.
	code, body, _ := call(t, srv, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{
		"email": "nobody@example.com",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "If email exists, reset link will be sent", body["message"])

	code, body, _ = call(t, srv, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{
		"email": "asha@example.com",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "If email exists, reset link will be sent", body["message"])

	// A made-up token is rejected.
	code, body, _ = call(t, srv, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
		"token":    "not-a-real-token",
		"password": "newpassword",
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid or expired reset token", body["message"])
}
