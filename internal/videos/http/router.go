package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
	"github.com/aussiebroadwan/dancereel/internal/videos/store"
	"github.com/aussiebroadwan/dancereel/pkg/httpx"
	"github.com/aussiebroadwan/dancereel/pkg/slogx"

	_ "github.com/aussiebroadwan/dancereel/api/videos" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// StorageChecker reports whether blob storage can accept writes.
type StorageChecker interface {
	CheckWritable() error
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	storage StorageChecker

	IdentityService *service.IdentityService
	IngestService   *service.IngestService
	CatalogService  *service.CatalogService

	// MaxUploadBytes caps the /upload request body; 0 disables the cap.
	MaxUploadBytes int64
}

func NewRouter(
	buildVersion string,
	st store.Store,
	storage StorageChecker,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		storage:      storage,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerVideos()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Dancereel Video Service API
//	@version		0.1.0
//	@description	Register dancers, upload performance clips and stream them back.
//	@description
//	@description				Tokens are opaque and never expire. Send them as "Authorization: <token>" or "Authorization: Bearer <token>".
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/dancereel
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque token from /register or /login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	registerHandler := &RegisterHandler{IdentityService: r.IdentityService}
	loginHandler := &LoginHandler{IdentityService: r.IdentityService}

	// Credential endpoints - strict rate limit by IP + username
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
}

func (r *Router) registerVideos() {
	uploadHandler := &UploadHandler{
		IngestService: r.IngestService,
		MaxBytes:      r.MaxUploadBytes,
	}

	// POST /upload - reject missing or unknown tokens before reading the body
	r.Mux.Handle("POST /upload",
		httpx.Chain(uploadHandler,
			httpx.Authenticate(r.IdentityService),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Public reads - high limit by IP
	r.Mux.Handle("GET /videos",
		httpx.Chain(&ListVideosHandler{CatalogService: r.CatalogService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /play/{id}",
		httpx.Chain(&PlayHandler{CatalogService: r.CatalogService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.storage),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
