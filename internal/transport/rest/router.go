package rest

import (
	"net/http"

	"github.com/heartmarshall/postcal-backend/internal/transport/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Days        *DayHandler
	Matrix      *MatrixHandler
	Hooks       *HooksHandler
	Integration *IntegrationHandler
	History     *HistoryHandler
	// GraphQL is mounted at POST /graphql when set.
	GraphQL http.Handler
}

// NewRouter registers all routes. Health endpoints are public; everything
// under /api requires an authenticated user. shareLimit, when non-nil,
// wraps the share endpoint only.
func NewRouter(h Handlers, shareLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := func(pattern string, fn http.HandlerFunc, extra ...middleware.Middleware) {
		mws := append([]middleware.Middleware{middleware.RequireUser}, extra...)
		mux.Handle(pattern, middleware.Chain(mws...)(fn))
	}

	// Days
	api("GET /api/days", h.Days.List)
	api("GET /api/months/{year}/{month}", h.Days.Month)
	api("GET /api/days/{date}", h.Days.Get)
	api("PATCH /api/days/{date}", h.Days.Update)
	api("POST /api/days/{date}/advance", h.Days.Advance)
	api("POST /api/days/{date}/retreat", h.Days.Retreat)
	api("POST /api/days/{date}/publish", h.Days.Publish)
	api("PUT /api/days/{date}/matrix-ref", h.Days.SelectFromMatrix)
	api("DELETE /api/days/{date}/matrix-ref", h.Days.Dereference)
	api("POST /api/days/{date}/share", h.Days.Share, shareLimit)

	// Matrix
	api("GET /api/matrix", h.Matrix.Get)
	api("PUT /api/matrix", h.Matrix.Save)
	api("POST /api/matrix/rows", h.Matrix.AddRow)
	api("POST /api/matrix/columns", h.Matrix.AddColumn)
	api("DELETE /api/matrix/rows/{index}", h.Matrix.DeleteRow)
	api("DELETE /api/matrix/columns/{index}", h.Matrix.DeleteColumn)
	api("PUT /api/matrix/headers/{kind}/{index}", h.Matrix.UpdateHeader)
	api("PUT /api/matrix/cells/{row}/{col}", h.Matrix.UpdateCell)

	// Hooks
	api("GET /api/hooks", h.Hooks.Get)
	api("PUT /api/hooks", h.Hooks.Save)

	// Integration
	api("GET /api/integrations/linkedin", h.Integration.Status)
	api("GET /api/integrations/linkedin/authorize", h.Integration.Authorize)
	api("POST /api/integrations/linkedin/callback", h.Integration.Callback)
	api("DELETE /api/integrations/linkedin", h.Integration.Disconnect)

	// History
	api("GET /api/days/{date}/history", h.History.Day)
	api("GET /api/activity", h.History.Activity)

	if h.GraphQL != nil {
		mux.Handle("POST /graphql", middleware.RequireUser(h.GraphQL))
	}

	return mux
}
