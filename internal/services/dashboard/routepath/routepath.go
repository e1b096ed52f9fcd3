// Package routepath holds the dashboard URL paths.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	Users       = "/users"
	UsersTable  = "/users/table"
	UsersPrefix = "/users/"
)

// UserStatusSuffix ends the per-user status mutation path.
const UserStatusSuffix = "/status"

func UserDetail(userID string) string {
	return Users + "/" + escapeSegment(userID)
}

func UserStatus(userID string) string {
	return UserDetail(userID) + UserStatusSuffix
}

// WithQuery appends an encoded query string to path when it is not empty.
func WithQuery(path string, rawQuery string) string {
	rawQuery = strings.TrimPrefix(strings.TrimSpace(rawQuery), "?")
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
