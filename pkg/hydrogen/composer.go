package hydrogen

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// Composer is the chainable handle returned by Compose and Attach. The
// first misuse error it meets is kept and every later call on the same
// Composer becomes a no-op; read it with Err.
type Composer struct {
	logger *slog.Logger
	err    error
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for composition events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Composer. Without WithLogger it logs nowhere.
func New(opts ...Option) *Composer {
	c := &Composer{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose is shorthand for New().Compose.
func Compose(t, parent *Type, props Props) *Composer {
	return New().Compose(t, parent, props)
}

// Attach is shorthand for New().Attach.
func Attach(t *Type, closure any) *Composer {
	return New().Attach(t, closure)
}

// Err returns the first error met by this Composer, or nil.
func (c *Composer) Err() error { return c.err }

// Compose links t into a type hierarchy and installs its factory.
//
// With a nil parent, props are merged onto t's own empty prototype. With a
// parent, one instance of parent is built through its factory (running any
// attached closures exactly once) and becomes t's prototype; the parent is
// recorded as t's Parent and as the prototype's Super. props are merged
// last, so they override anything inherited.
//
// Composing a type twice fails with ErrAlreadyComposed.
func (c *Composer) Compose(t, parent *Type, props Props) *Composer {
	if c.err != nil {
		return c
	}
	if t == nil {
		c.err = fmt.Errorf("compose: %w", types.ErrNilType)
		return c
	}
	if t.composed {
		c.err = fmt.Errorf("compose %s: %w", t.name, types.ErrAlreadyComposed)
		return c
	}

	if parent != nil {
		var shared *Object
		if parent.HasFactory() {
			shared = parent.Make()
		} else {
			shared = parent.New()
		}
		shared.super = parent
		t.proto = shared
		t.parent = parent
	}
	Extend(t.proto, props)
	t.composed = true
	t.factory = true

	c.logger.Debug("type composed",
		"type", t.name,
		"type_id", t.id,
		"parent", parentName(parent),
		"props", len(props),
	)
	return c
}

// Attach layers a closure over t's factory. Every instance built by t.Make
// afterwards runs the closure once with itself as receiver and gains the
// returned properties as own members, shadowing same-named prototype
// members. Later attachments win over earlier ones. Instances that already
// exist are unaffected.
//
// closure must be a ClosureFactory, a func(*Object) Props, or a *Func whose
// result is a Props, map[string]any or *Object. Any other value fails with
// ErrNotCallable and leaves t untouched.
func (c *Composer) Attach(t *Type, closure any) *Composer {
	if c.err != nil {
		return c
	}
	fn, err := closureFactory(closure)
	if err != nil {
		c.err = err
		return c
	}
	if t == nil {
		c.err = fmt.Errorf("attach: %w", types.ErrNilType)
		return c
	}

	t.closures = append(t.closures, fn)
	t.factory = true

	c.logger.Debug("closure attached",
		"type", t.name,
		"type_id", t.id,
		"closures", len(t.closures),
	)
	return c
}

func closureFactory(closure any) (ClosureFactory, error) {
	switch f := closure.(type) {
	case ClosureFactory:
		if f != nil {
			return f, nil
		}
	case func(*Object) Props:
		if f != nil {
			return ClosureFactory(f), nil
		}
	case *Func:
		if f != nil && f.Fn != nil {
			return func(this *Object) Props {
				return asProps(f.Call(this))
			}, nil
		}
	}
	return nil, fmt.Errorf("closure is of type %s, expected to be a function: %w",
		Classify(closure), types.ErrNotCallable)
}

func parentName(parent *Type) string {
	if parent == nil {
		return ""
	}
	return parent.name
}
