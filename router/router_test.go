package router

import (
	"context"
	"fmt"
	"testing"

	"github.com/lanterntools/lantern/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusSubscribeAndEmit(t *testing.T) {
	bus := NewBus()

	var got []Event
	dispose := bus.Subscribe(TransitionStart, func(e Event) {
		got = append(got, e)
	})
	defer dispose()

	bus.Emit(Event{Kind: TransitionStart, Route: "home"})
	bus.Emit(Event{Kind: TransitionComplete, Route: "home"}) // different kind, not delivered

	require.Len(t, got, 1)
	assert.Equal(t, "home", got[0].Route)
	assert.Equal(t, TransitionStart, got[0].Kind)
}

func TestBusDisposeDetaches(t *testing.T) {
	bus := NewBus()

	calls := 0
	dispose := bus.Subscribe(TransitionComplete, func(Event) { calls++ })

	bus.Emit(Event{Kind: TransitionComplete})
	dispose()
	bus.Emit(Event{Kind: TransitionComplete})

	assert.Equal(t, 1, calls, "disposed callback must not fire")
}

func TestBusDisposeIdempotent(t *testing.T) {
	bus := NewBus()

	first := 0
	dispose := bus.Subscribe(TransitionStart, func(Event) { first++ })
	dispose()
	dispose() // second call is a no-op

	// A later subscriber must be unaffected by the double dispose.
	second := 0
	stop := bus.Subscribe(TransitionStart, func(Event) { second++ })
	defer stop()

	bus.Emit(Event{Kind: TransitionStart})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestBusDisposeFromCallback(t *testing.T) {
	bus := NewBus()

	calls := 0
	var dispose func()
	dispose = bus.Subscribe(TransitionStart, func(Event) {
		calls++
		dispose()
	})

	bus.Emit(Event{Kind: TransitionStart})
	bus.Emit(Event{Kind: TransitionStart})

	assert.Equal(t, 1, calls, "self-disposing callback fires once")
}

func TestNavigateEmitsStartThenComplete(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Register(Route{
		Name: "articles",
		Load: func(ctx context.Context) (interface{}, error) {
			return []string{"a", "b"}, nil
		},
	}))

	var order []EventKind
	for _, kind := range []EventKind{TransitionStart, TransitionComplete, TransitionError} {
		kind := kind
		defer r.Bus().Subscribe(kind, func(Event) { order = append(order, kind) })()
	}

	data, err := r.Navigate(context.Background(), "articles")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, data)
	assert.Equal(t, []EventKind{TransitionStart, TransitionComplete}, order)
	assert.Equal(t, "articles", r.Current())
}

func TestNavigateEmitsStartThenError(t *testing.T) {
	r := New(nil)
	boom := fmt.Errorf("boom")
	require.NoError(t, r.Register(Route{
		Name: "broken",
		Load: func(ctx context.Context) (interface{}, error) {
			return nil, boom
		},
	}))

	var order []EventKind
	var gotErr error
	defer r.Bus().Subscribe(TransitionStart, func(Event) { order = append(order, TransitionStart) })()
	defer r.Bus().Subscribe(TransitionComplete, func(Event) { order = append(order, TransitionComplete) })()
	defer r.Bus().Subscribe(TransitionError, func(e Event) {
		order = append(order, TransitionError)
		gotErr = e.Err
	})()

	_, err := r.Navigate(context.Background(), "broken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTransitionFailed))
	assert.Equal(t, []EventKind{TransitionStart, TransitionError}, order)
	require.NotNil(t, gotErr)

	// The failed route does not become current.
	assert.Equal(t, "", r.Current())
}

func TestNavigateUnknownRouteEmitsNothing(t *testing.T) {
	r := New(nil)

	events := 0
	for _, kind := range []EventKind{TransitionStart, TransitionComplete, TransitionError} {
		defer r.Bus().Subscribe(kind, func(Event) { events++ })()
	}

	_, err := r.Navigate(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRouteNotFound))
	assert.Equal(t, 0, events, "unknown route must not emit lifecycle events")
}

func TestNavigateNilLoader(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Register(Route{Name: "about"}))

	data, err := r.Navigate(context.Background(), "about")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "about", r.Current())
}

func TestRoutesSorted(t *testing.T) {
	r := New(nil)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(Route{Name: name}))
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Routes())
}
