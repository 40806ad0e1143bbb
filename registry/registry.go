// Package registry keeps the catalog of overlay element types. A type
// is registered once with its static metadata, an optional class-init
// hook (run exactly once, before any instance is constructed) and a
// factory for instances.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/xaionaro-go/overlaypipeline/logger"
	"github.com/xaionaro-go/overlaypipeline/textoverlay"
	"github.com/xaionaro-go/overlaypipeline/types"
	"github.com/xaionaro-go/xsync"
)

// Factory constructs a new instance of a registered element type.
type Factory func(ctx context.Context) (textoverlay.Element, error)

// Registration describes one element type.
type Registration struct {
	Metadata types.ElementMetadata

	// ClassInit configures type-wide state (e.g. the shared font
	// rendering context). It runs exactly once, on registration.
	ClassInit func(ctx context.Context)

	NewFunc Factory

	classInitOnce sync.Once
}

func (r *Registration) runClassInit(ctx context.Context) {
	r.classInitOnce.Do(func() {
		if r.ClassInit == nil {
			return
		}
		r.ClassInit(ctx)
	})
}

type ErrAlreadyRegistered struct {
	Name string
}

func (e ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("element type '%s' is already registered", e.Name)
}

type ErrNotRegistered struct {
	Name string
}

func (e ErrNotRegistered) Error() string {
	return fmt.Sprintf("element type '%s' is not registered", e.Name)
}

var (
	locker  xsync.Mutex
	catalog = map[string]*Registration{}
)

// Register adds an element type to the catalog and runs its class-init
// hook. Registering the same name twice is an error (and the second
// class-init never runs).
func Register(ctx context.Context, registration *Registration) (_err error) {
	logger.Debugf(ctx, "Register(%q)", registration.Metadata.Name)
	defer func() { logger.Debugf(ctx, "/Register(%q): %v", registration.Metadata.Name, _err) }()
	return xsync.DoR1(ctx, &locker, func() error {
		name := registration.Metadata.Name
		if name == "" {
			return fmt.Errorf("an element type requires a non-empty name")
		}
		if registration.NewFunc == nil {
			return fmt.Errorf("element type '%s' has no factory", name)
		}
		if _, ok := catalog[name]; ok {
			return ErrAlreadyRegistered{Name: name}
		}
		registration.runClassInit(ctx)
		catalog[name] = registration
		return nil
	})
}

// New constructs an instance of a registered element type.
func New(ctx context.Context, name string) (textoverlay.Element, error) {
	registration := xsync.DoR1(ctx, &locker, func() *Registration {
		return catalog[name]
	})
	if registration == nil {
		return nil, ErrNotRegistered{Name: name}
	}
	return registration.NewFunc(ctx)
}

// Metadata returns the static description record of a registered type.
func Metadata(ctx context.Context, name string) (types.ElementMetadata, error) {
	registration := xsync.DoR1(ctx, &locker, func() *Registration {
		return catalog[name]
	})
	if registration == nil {
		return types.ElementMetadata{}, ErrNotRegistered{Name: name}
	}
	return registration.Metadata, nil
}

// Names lists the registered element type names, sorted.
func Names(ctx context.Context) []string {
	return xsync.DoR1(ctx, &locker, func() []string {
		names := make([]string, 0, len(catalog))
		for name := range catalog {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	})
}
