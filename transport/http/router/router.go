package router

import (
	"conectapro/internal/handlers/auth"
	"conectapro/internal/handlers/catalog"
	"conectapro/internal/handlers/home"
	"conectapro/internal/handlers/location"
	"conectapro/internal/handlers/paymentmethod"
	"conectapro/internal/handlers/provider"
	"conectapro/internal/handlers/review"
	"conectapro/internal/handlers/servicerequest"
	"conectapro/internal/handlers/system"
	"conectapro/internal/handlers/user"
	"conectapro/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	User           user.Handler
	Home           home.Handler
	Location       location.Handler
	PaymentMethod  paymentmethod.Handler
	Catalog        catalog.Handler
	Provider       provider.Handler
	ServiceRequest servicerequest.Handler
	Review         review.Handler
	System         system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every versioned endpoint. APIKey runs first so internal callers
// skip Auth; RBAC then checks the caller's role against the embedded permissions.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Home.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.PaymentMethod.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Provider.Router(routerGroup)
		r.DomainHandlers.ServiceRequest.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.System.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
