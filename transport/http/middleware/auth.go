package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"slices"

	"conectapro/config"
	"conectapro/infras/jwt"
	"conectapro/infras/otel"
	"conectapro/permissions"
	"conectapro/shared/constant"
	"conectapro/shared/failure"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

const (
	msgMissingAuthorization = "Falta el encabezado de autorización"
	msgMalformedAuthorization = "Formato de autorización inválido"
	msgInvalidClaims        = "Credenciales del token inválidas"
	msgInvalidToken         = "Token inválido"
)

// tokenErrors maps validation failures to the message shown to the client.
var tokenErrors = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "El token ha expirado"},
	{jwt.ErrInvalidClaim, msgInvalidClaims},
}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole is the full chain: APIKey, then Auth, then RBAC.
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// routeOf resolves the registered pattern of the request, e.g. /v1/clients/locations/{locationId}/default.
func routeOf(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

// bypass reports whether the request was authenticated by API key or hits a public route.
func (m *authRoleImpl) bypass(request *http.Request) bool {
	if skip, _ := request.Context().Value(skipAuth).(bool); skip {
		return true
	}

	return m.permission != nil && m.permission.FindPermissions(routeOf(request), request.Method).Skip
}

func tokenMessage(err error) string {
	for _, te := range tokenErrors {
		if errors.Is(err, te.err) {
			return te.message
		}
	}

	return msgInvalidToken
}

func withIdentity(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserPhone, claims.Phone)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

	return context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
}

// authenticate validates the bearer token of request. On failure it returns the
// message shown to the client.
func (m *authRoleImpl) authenticate(ctx context.Context, request *http.Request) (*jwt.Claims, string) {
	_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"middleware.type": "auth",
		"http.route":      routeOf(request),
		"http.method":     request.Method,
	})

	reject := func(message string) (*jwt.Claims, string) {
		scope.TraceError(failure.Unauthorized(message))

		return nil, message
	}

	header := request.Header.Get(constant.RequestHeaderAuthorization)
	if header == "" {
		return reject(msgMissingAuthorization)
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return reject(msgMalformedAuthorization)
	}

	claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
	if err != nil {
		return reject(tokenMessage(err))
	}

	if claims.UserID == "" || claims.Role == "" {
		log.Error().Str("user_id", claims.UserID).Msg("JWT claims: required claim is empty")

		return reject(msgInvalidClaims)
	}

	scope.SetAttribute("user.id", claims.UserID)

	return claims, ""
}

// Auth validates bearer access tokens and puts the verified identity in the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.bypass(request) {
			next.ServeHTTP(writer, request)

			return
		}

		claims, message := m.authenticate(request.Context(), request)
		if claims == nil {
			response.WithError(writer, failure.Unauthorized(message))

			return
		}

		next.ServeHTTP(writer, request.WithContext(withIdentity(request.Context(), claims)))
	})
}

// RBAC checks the role put in the context by Auth against the roles allowed for the route.
// Without a permission table every authenticated route is forbidden.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if skip, _ := request.Context().Value(skipAuth).(bool); skip {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		permission := m.permission.FindPermissions(routeOf(request), request.Method)
		if m.permission.Skip || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
		if len(permission.Permissions) == 0 || slices.Contains(permission.Permissions, role) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		scope.TraceError(failure.ForbiddenError)
		scope.SetAttributes(map[string]any{
			"user_role":     role,
			"allowed_roles": permission.Permissions,
			"reason":        "role_not_allowed",
		})

		response.WithError(writer, failure.ForbiddenError)
	})
}

// APIKey authenticates internal service-to-service calls. A request carrying the
// configured key skips Auth and RBAC; any other key is rejected, as is every key
// when none is configured.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), skipAuth, false)))

			return
		}

		if !m.validAPIKey(request.Context(), key) {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), skipAuth, true)))
	})
}

func (m *authRoleImpl) validAPIKey(ctx context.Context, key string) bool {
	_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
	defer scope.End()

	scope.SetAttribute("http.source", "internal")

	expected := m.cfg.App.APIKey
	if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
		scope.TraceError(failure.ForbiddenError)

		return false
	}

	return true
}
