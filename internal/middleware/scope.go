package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fms-dashboard/internal/model"
)

// Scope headers set by the dashboard UI.
const (
	HeaderUsername   = "X-Username"
	HeaderCompany    = "X-Company"
	HeaderRole       = "X-Role"
	HeaderIsAdmin    = "X-Is-Admin"
	HeaderMemberName = "X-Member-Name"
)

type scopeKey struct{}

// Scope resolves the caller scope from the request headers and stores it in
// the request context.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := ScopeFromHeaders(c.Request.Header.Get)
		c.Request = c.Request.WithContext(SetScope(c.Request.Context(), sc))
		c.Next()
	}
}

// ScopeFromHeaders builds the scope from header values.
func ScopeFromHeaders(get func(string) string) model.Scope {
	username := strings.TrimSpace(get(HeaderUsername))
	company := strings.TrimSpace(get(HeaderCompany))
	member := strings.TrimSpace(get(HeaderMemberName))
	isAdmin, _ := strconv.ParseBool(strings.TrimSpace(get(HeaderIsAdmin)))

	in := model.RoleInput{
		Username:    username,
		IsAdmin:     isAdmin,
		CompanyName: company,
		MemberName:  member,
		SessionRole: strings.ToLower(strings.TrimSpace(get(HeaderRole))),
		HasUserData: username != "" || member != "",
	}
	if company == "" {
		in.UserUsername = username
	}

	return model.Scope{
		Role:        model.DetermineRole(in),
		Username:    username,
		Member:      member,
		CompanyName: company,
	}
}

// SetScope returns ctx carrying sc.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the scope stored by Scope. ok is false when none was set.
func GetScope(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok
}
