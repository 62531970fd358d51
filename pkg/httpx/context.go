package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID  ctxKey = "user_id"
	CtxKeyAdminID ctxKey = "admin_id"
)

// UserID returns the authenticated user id from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}

// AdminID returns the authenticated admin id from the request context.
func AdminID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyAdminID).(string)
	return id, ok && id != ""
}
