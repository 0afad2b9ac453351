package api

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"bidhouse/api/openapi"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	RoleAdmin      = "admin"

	msgUnauthorized = "missing or invalid user id"
	msgForbidden    = "admin role required"
)

// currentUser 解析閘道轉發的 X-User-ID，身分驗證由前方的閘道負責
func currentUser(userID *openapi.UserID) (uuid.UUID, bool) {
	if userID == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(*userID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func isAdmin(role *openapi.UserRole) bool {
	return lo.FromPtr(role) == RoleAdmin
}
