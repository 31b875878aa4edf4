package errors

import (
	"fmt"
	"testing"
)

func TestLanternError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeRouteNotFound, "route not found")
	if err.Code != ErrCodeRouteNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRouteNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeTransitionFailed, "transition failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeTransitionFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeRouteNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("route", "settings").WithDetail("attempt", 2)
	if detailed.Details["route"] != "settings" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test RouteNotFound
	err := RouteNotFound("settings")
	if err.Code != ErrCodeRouteNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRouteNotFound, err.Code)
	}
	if err.Details["route"] != "settings" {
		t.Error("RouteNotFound should include route detail")
	}

	// Test QueryFailed
	cause := fmt.Errorf("connection refused")
	err = QueryFailed("articles:page:2", cause)
	if err.Code != ErrCodeQueryFailed {
		t.Errorf("expected code %s, got %s", ErrCodeQueryFailed, err.Code)
	}
	if err.Details["key"] != "articles:page:2" {
		t.Error("QueryFailed should include key detail")
	}
	if err.Unwrap() != cause {
		t.Error("QueryFailed should wrap the cause")
	}

	// Test SessionExpired
	err = SessionExpired("abc-123")
	if err.Code != ErrCodeSessionExpired {
		t.Errorf("expected code %s, got %s", ErrCodeSessionExpired, err.Code)
	}
}
