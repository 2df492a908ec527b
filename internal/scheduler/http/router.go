package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/service"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/pkg/httpx"
	"github.com/aussiebroadwan/scheduler/pkg/slogx"

	_ "github.com/aussiebroadwan/scheduler/api/scheduler" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.Limits

	store          store.Store
	BookingService *service.BookingService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	limits httpx.Limits,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		limits:       limits,
		store:        st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerBookings()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Interview Scheduler API
//	@version		0.1.0
//	@description	Books interviews at a single instant, invites the candidate and tracks their response.
//	@description
//	@description	Two bookings can never share the same proposed time.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/scheduler
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerBookings() {
	create := &CreateBookingHandler{BookingService: r.BookingService}
	respond := &RespondHandler{BookingService: r.BookingService}
	status := &BookingStatusHandler{BookingService: r.BookingService}

	// POST /bookings - strict, every success claims a slot
	r.Mux.Handle("POST /v1/bookings",
		httpx.Chain(create,
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)

	// POST /bookings/{id}/respond - moderate, bucketed per booking
	r.Mux.Handle("POST /v1/bookings/{id}/respond",
		httpx.Chain(respond,
			httpx.RateLimitByIPAndPath(r.limits.Moderate, "id"),
		),
	)

	r.Mux.Handle("GET /v1/bookings/{id}/status",
		httpx.Chain(status,
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}
