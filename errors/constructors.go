package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *LanternError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *LanternError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// RouteNotFound creates a route not found error
func RouteNotFound(name string) *LanternError {
	return New(ErrCodeRouteNotFound, fmt.Sprintf("route '%s' is not registered", name)).
		WithDetail("route", name)
}

// TransitionFailed wraps a page loader failure
func TransitionFailed(route string, err error) *LanternError {
	return Wrap(err, ErrCodeTransitionFailed, fmt.Sprintf("transition to '%s' failed", route)).
		WithDetail("route", route)
}

// SessionNotFound creates a session not found error
func SessionNotFound(id string) *LanternError {
	return New(ErrCodeSessionNotFound, fmt.Sprintf("session '%s' not found", id)).
		WithDetail("session", id)
}

// SessionExpired creates a session expired error
func SessionExpired(id string) *LanternError {
	return New(ErrCodeSessionExpired, fmt.Sprintf("session '%s' has expired", id)).
		WithDetail("session", id)
}

// QueryFailed wraps a data-fetch failure for a cache key
func QueryFailed(key string, err error) *LanternError {
	return Wrap(err, ErrCodeQueryFailed, fmt.Sprintf("query '%s' failed", key)).
		WithDetail("key", key)
}
