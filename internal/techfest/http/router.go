package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/pkg/httpx"
	"github.com/CU-CodingClub/Main/pkg/jwtx"
	"github.com/CU-CodingClub/Main/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	AuthService         *service.Auth
	ProfileService      *service.Profile
	RegistrationService *service.Registration
	AdminService        *service.Admin
}

func NewRouter(verifier jwtx.Verifier, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUser()
	r.registerRegistrations()
	r.registerAdmin()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints get strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/admin/login",
		httpx.Chain(http.HandlerFunc(h.HandleAdminLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUser() {
	h := &UserHandler{
		ProfileService:      r.ProfileService,
		RegistrationService: r.RegistrationService,
	}

	r.Mux.Handle("GET /api/user/registrations",
		httpx.Chain(http.HandlerFunc(h.HandleRegistrations),
			httpx.RequireUser(r.verifier),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /api/user/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.RequireUser(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRegistrations() {
	h := &RegistrationHandler{RegistrationService: r.RegistrationService}

	r.Mux.Handle("POST /api/hackathon/register",
		httpx.Chain(http.HandlerFunc(h.HandleHackathon),
			httpx.RequireUser(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/workshop/register",
		httpx.Chain(http.HandlerFunc(h.HandleWorkshop),
			httpx.RequireUser(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	r.Mux.Handle("GET /api/admin/stats",
		httpx.Chain(http.HandlerFunc(h.HandleStats),
			httpx.RequireAdmin(r.verifier),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/admin/hackathon",
		httpx.Chain(http.HandlerFunc(h.HandleListHackathon),
			httpx.RequireAdmin(r.verifier),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/admin/workshop",
		httpx.Chain(http.HandlerFunc(h.HandleListWorkshop),
			httpx.RequireAdmin(r.verifier),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/admin/export/hackathon",
		httpx.Chain(http.HandlerFunc(h.HandleExportHackathon),
			httpx.RequireAdmin(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/admin/export/workshop",
		httpx.Chain(http.HandlerFunc(h.HandleExportWorkshop),
			httpx.RequireAdmin(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
