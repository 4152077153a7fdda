package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
	"github.com/aussiebroadwan/pitwall/pkg/jwtx"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"

	_ "github.com/aussiebroadwan/pitwall/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	AdminService     *service.AdminService
	TwoFactorService *service.TwoFactorService
	UserService      *service.UserService
	BootstrapService *service.BootstrapService

	// RequireAdminSession makes admin endpoints demand a session token
	// whose subject is the named admin.
	RequireAdminSession bool
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTwoFactor()
	r.registerAdmin()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pitwall Authentication API
//	@version		0.1.0
//	@description	Account registration, admin approval and two-factor login for the SimRacing Operations Hub.
//	@description
//	@description				Successful logins return an EdDSA-signed session token for the Authorization header.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/pitwall
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Password guessing is limited per IP and per targeted email.
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	me := &MeHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTwoFactor() {
	h := &TwoFactorHandler{TwoFactorService: r.TwoFactorService}

	// Each of these checks a password or a TOTP code.
	r.Mux.Handle("POST /api/auth/totp-setup",
		httpx.Chain(http.HandlerFunc(h.HandleSetup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/totp-verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/totp-disable",
		httpx.Chain(http.HandlerFunc(h.HandleDisable),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	session := httpx.OptionalAuthnMiddleware(r.verifier)
	if r.RequireAdminSession {
		session = httpx.AuthnMiddleware(r.verifier)
	}

	r.Mux.Handle("POST /api/auth/admin-approve",
		httpx.Chain(http.HandlerFunc(h.HandleApprove),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			session,
		),
	)
	r.Mux.Handle("POST /api/auth/admin-reject",
		httpx.Chain(http.HandlerFunc(h.HandleReject),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			session,
		),
	)
	r.Mux.Handle("GET /api/auth/users",
		httpx.Chain(http.HandlerFunc(h.HandleListUsers),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			session,
		),
	)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /api/auth/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	h := &HealthHandler{
		Version:     r.buildVersion,
		Started:     r.startTime,
		PingStore:   r.store.Ping,
		SignerReady: r.keys.IsReady,
	}

	// Probes are polled by orchestrators, so they get the lenient tier.
	r.Mux.Handle("GET /livez",
		httpx.Chain(http.HandlerFunc(h.HandleLivez), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(http.HandlerFunc(h.HandleReadyz), httpx.RateLimitByIP(httpx.LenientLimit)))
}
