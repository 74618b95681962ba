package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/account"
	"laundry/internal/generated/servers"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key under which the authenticated
// user's identifier is stored for handlers.
const actorContextKey = "actorID"

// casbinModel is the RBAC model for the staff API. Subjects are role names,
// objects are request paths, actions are HTTP methods.
const casbinModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

// rolePolicies grants staff the order operations and admins the role and
// audit operations. A user holding both roles passes either set.
var rolePolicies = [][]string{
	{"staff", "/api/v1/orders", "(GET)|(POST)"},
	{"staff", "/api/v1/orders/stats", "GET"},
	{"staff", "/api/v1/orders/:orderId", "(GET)|(DELETE)"},
	{"staff", "/api/v1/orders/:orderId/status", "PATCH"},
	{"admin", "/api/v1/audit", "GET"},
	{"admin", "/api/v1/users", "GET"},
	{"admin", "/api/v1/roles", "POST"},
	{"admin", "/api/v1/roles/:userId/:role", "DELETE"},
}

// RoleSource looks up the roles currently held by a user.
type RoleSource interface {
	Handle(ctx context.Context, query queries.GetUserRolesQuery) ([]account.Role, error)
}

// Authorizer authenticates requests with a bearer token and authorizes them
// against the role policies. The public tracking endpoint and the health
// check bypass it entirely.
type Authorizer struct {
	secret   []byte
	roles    RoleSource
	enforcer *casbin.Enforcer
}

// NewAuthorizer creates the request gate. The secret signs and verifies the
// HMAC bearer tokens issued to staff terminals.
func NewAuthorizer(secret []byte, roles RoleSource) (*Authorizer, error) {
	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, policy := range rolePolicies {
		if _, addErr := enforcer.AddPolicy(policy[0], policy[1], policy[2]); addErr != nil {
			return nil, addErr
		}
	}

	return &Authorizer{secret: secret, roles: roles, enforcer: enforcer}, nil
}

// Middleware returns the echo middleware enforcing authentication and role
// checks on every route except the public ones.
func (a *Authorizer) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if isPublicPath(ctx.Request().URL.Path) {
				return next(ctx)
			}

			actor, err := a.authenticate(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			allowed, err := a.authorize(ctx, actor)
			if err != nil {
				return ctx.JSON(http.StatusInternalServerError, servers.Error{
					Code:    http.StatusInternalServerError,
					Message: "Failed to resolve roles",
				})
			}
			if !allowed {
				return ctx.JSON(http.StatusForbidden, servers.Error{
					Code:    http.StatusForbidden,
					Message: "Insufficient role",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func (a *Authorizer) authenticate(ctx echo.Context) (uuid.UUID, error) {
	token, err := extractToken(ctx.Request().Header.Get("Authorization"))
	if err != nil {
		return uuid.Nil, err
	}

	claims := new(jwt.MapClaims)
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return uuid.Nil, errInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, errInvalidToken
	}

	actor, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}

	return actor, nil
}

func (a *Authorizer) authorize(ctx echo.Context, actor uuid.UUID) (bool, error) {
	rolesQuery, err := queries.NewGetUserRolesQuery(actor)
	if err != nil {
		return false, err
	}

	roles, err := a.roles.Handle(ctx.Request().Context(), rolesQuery)
	if err != nil {
		return false, err
	}

	obj := ctx.Path()
	act := ctx.Request().Method
	for _, role := range roles {
		ok, enforceErr := a.enforcer.Enforce(role.String(), obj, act)
		if enforceErr != nil {
			return false, enforceErr
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

var (
	errMissingAuthHeader = errors.New("authorization header missing")
	errInvalidToken      = errors.New("invalid token")
)

// extractToken extracts a bearer token from the Authorization header.
func extractToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errMissingAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errInvalidToken
	}

	return parts[1], nil
}

// isPublicPath reports whether a request path is served without a token.
func isPublicPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/api/v1/track/")
}

// actorID returns the authenticated user set by the middleware, nil when the
// request reached the handler without one.
func actorID(ctx echo.Context) *uuid.UUID {
	if actor, ok := ctx.Get(actorContextKey).(uuid.UUID); ok {
		return &actor
	}
	return nil
}
