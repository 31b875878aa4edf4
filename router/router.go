package router

import (
	"context"
	"sort"
	"sync"

	"github.com/lanterntools/lantern/errors"
	"github.com/sirupsen/logrus"
)

// LoaderFunc fetches whatever a page needs before it can be shown. The
// returned value is handed to the page factory unchanged.
type LoaderFunc func(ctx context.Context) (interface{}, error)

// Route describes a navigable destination.
type Route struct {
	// Name is the unique route key used with Navigate.
	Name string
	// Title is the human-readable page title.
	Title string
	// Load fetches the page's data. A nil Load navigates instantly with
	// nil data.
	Load LoaderFunc
}

// Router owns the route registry and runs navigations, emitting the
// transition lifecycle events (start, then exactly one of complete or error)
// on its Bus. At most one transition is active at a time; a second Navigate
// blocks until the first has settled.
type Router struct {
	bus *Bus
	log *logrus.Entry

	mu      sync.Mutex
	routes  map[string]Route
	current string

	// transitionMu serializes navigations.
	transitionMu sync.Mutex
}

// New creates a Router with an empty registry.
func New(log *logrus.Entry) *Router {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &Router{
		bus:    NewBus(),
		log:    log,
		routes: make(map[string]Route),
	}
}

// Bus returns the lifecycle event bus. Components subscribe here.
func (r *Router) Bus() *Bus {
	return r.bus
}

// Register adds a route to the registry. Registering the same name twice
// replaces the earlier route.
func (r *Router) Register(route Route) error {
	if route.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "route name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route.Name] = route
	return nil
}

// Routes returns the registered route names, sorted.
func (r *Router) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the route registered under name.
func (r *Router) Lookup(name string) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[name]
	if !ok {
		return Route{}, errors.RouteNotFound(name)
	}
	return route, nil
}

// Current returns the name of the route most recently navigated to.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate runs a transition to the named route: it emits TransitionStart,
// runs the route's loader, and emits exactly one of TransitionComplete or
// TransitionError. The loaded data is returned on success.
//
// An unknown route fails before any event is emitted, so observers never see
// a start without a matching end.
func (r *Router) Navigate(ctx context.Context, name string) (interface{}, error) {
	route, err := r.Lookup(name)
	if err != nil {
		r.log.WithField("route", name).Warn("Navigation to unknown route")
		return nil, err
	}

	r.transitionMu.Lock()
	defer r.transitionMu.Unlock()

	r.log.WithField("route", name).Debug("Transition started")
	r.bus.Emit(Event{Kind: TransitionStart, Route: name})

	var data interface{}
	if route.Load != nil {
		data, err = route.Load(ctx)
	}
	if err != nil {
		ferr := errors.TransitionFailed(name, err)
		r.log.WithField("route", name).WithError(err).Warn("Transition failed")
		r.bus.Emit(Event{Kind: TransitionError, Route: name, Err: ferr})
		return nil, ferr
	}

	r.mu.Lock()
	r.current = name
	r.mu.Unlock()

	r.log.WithField("route", name).Debug("Transition complete")
	r.bus.Emit(Event{Kind: TransitionComplete, Route: name})
	return data, nil
}
