package model

import (
	"strings"

	"github.com/google/uuid"
)

type ContextKey string

const (
	CallerKey ContextKey = "caller"
)

// Caller は認証済みの呼び出し元ユーザー。
// ミドルウェアで解決され、サービスの各メソッドに明示的に渡される。
type Caller struct {
	UserID    uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

// DisplayName は証明書などに表示する名前を返す
func (c Caller) DisplayName() string {
	if c.FirstName != "" {
		return strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	if local, _, ok := strings.Cut(c.Email, "@"); ok && local != "" {
		return local
	}
	if c.Email != "" {
		return c.Email
	}
	return "Participant"
}
