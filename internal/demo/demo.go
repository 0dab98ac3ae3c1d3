// Package demo contains the example scenes rendered by cmd/ergodemo.
//
// Every scene draws one frame into a Context at a given time and leaves the
// Context exactly as it found it: same camera, same render target, same
// transform depth.
package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/ergo"
)

const tau = 2 * math32.Pi

// Scene renders one frame of a demo.
type Scene interface {
	// Render draws the frame at t seconds.
	Render(ctx *ergo.Context, t float32)
}

// Option adjusts a scene created by New.
type Option func(*options)

type options struct {
	background *ergo.Color
}

// WithBackground sets the color the scene clears its outermost layer to.
func WithBackground(c ergo.Color) Option {
	return func(o *options) { o.background = &c }
}

// setBackground overrides dst when a background was requested.
func (o *options) setBackground(dst *ergo.Color) {
	if o.background != nil {
		*dst = *o.background
	}
}

var registry = map[string]func(o *options) Scene{
	"nested": func(o *options) Scene {
		n := NewNested()
		o.setBackground(&n.Background)
		return n
	},
	"minimap": func(o *options) Scene {
		m := NewMinimap()
		o.setBackground(&m.Background)
		return m
	},
	"movement": func(o *options) Scene {
		m := NewMovement()
		o.setBackground(&m.Background)
		return m
	},
}

// New returns a fresh instance of the named scene.
func New(name string, opts ...Option) (Scene, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("demo: unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return ctor(&o), nil
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
