package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/wiralabs/campaign-api/api/middleware"
	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/constant"
	appLogger "github.com/wiralabs/campaign-api/infrastructure/logger"
)

// Router represents the application router
type Router struct {
	handler *Handler
	diag    *Diagnostics
	router  *chi.Mux
}

// NewRouter creates a new router. The recovery middleware funnels panics
// through the responder so every failure path, panics included, produces the
// standard envelope.
func NewRouter(handler *Handler, diag *Diagnostics, responder *apperr.Responder) *Router {
	r := chi.NewRouter()

	// Middleware setup
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recoverer(responder))

	return &Router{
		handler: handler,
		diag:    diag,
		router:  r,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() {
	appLogger.Info(constant.MsgSettingUpRoutes, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRouter,
	})

	// Campaign routes
	r.router.Post(constant.RouteCreateCampaign, r.handler.CreateCampaign)
	r.router.Get(constant.RouteListCampaigns, r.handler.ListCampaigns)
	r.router.Get(constant.RouteGetCampaign, r.handler.GetCampaign)
	r.router.Post(constant.RouteValidateCampaign, r.handler.ValidateCampaign)
	r.router.Post(constant.RouteSetupCampaign, r.handler.SetupCampaign)
	r.router.Post(constant.RouteLaunchCampaign, r.handler.LaunchCampaign)
	r.router.Get(constant.RouteCampaignQR, r.handler.CampaignQR)

	// Diagnostic fault-injection routes
	r.router.Get(constant.RouteTestError, r.diag.TestError)
	r.router.Get(constant.RouteTestTableMissing, r.diag.TestTableMissing)
	r.router.Get(constant.RouteTestDBDown, r.diag.TestDBUnavailable)
	r.router.Get(constant.RouteTestNullRef, r.diag.TestNullReference)
	r.router.Get(constant.RouteTestValidation, r.diag.TestValidation)
	r.router.Get(constant.RouteTestNotFound, r.diag.TestNotFound)

	// Healthcheck
	r.router.Get(constant.RouteHealthcheck, func(w http.ResponseWriter, req *http.Request) {
		appLogger.CtxDebug(req.Context(), constant.MsgHealthcheckRequest, appLogger.LoggerInfo{
			ContextFunction: constant.CtxRouter,
		})

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(constant.MsgHealthy))
	})
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
