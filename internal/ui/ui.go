// Package ui creates matched sets of themed display widgets.  A factory is
// built once per theme and every widget it produces renders in that theme;
// when the widget family grows, every concrete factory must be extended in
// lockstep so a single factory can never hand out mixed-theme sets.
package ui

import (
    "fmt" // fmt writes the widget output lines
    "io"  // io.Writer is the render sink type
    "os"  // os.Stdout is the default render sink
)

// Widget is a renderable UI element.  Render writes the widget's visual
// representation to the sink its factory was constructed with and returns
// nothing.  The output of a given variant is deterministic and distinct
// from every other variant.
type Widget interface {
    Render()
}

// Factory creates widgets of one visual theme.
type Factory interface {
    CreateButton() Widget
    CreateCheckbox() Widget
}

// DarkFactory creates dark-themed widgets.
type DarkFactory struct {
    out io.Writer // sink the produced widgets render to
}

// NewDarkFactory returns a factory whose widgets render to out.  A nil out
// falls back to os.Stdout.
func NewDarkFactory(out io.Writer) *DarkFactory {
    if out == nil {
        out = os.Stdout
    }
    return &DarkFactory{out: out}
}

// CreateButton returns a dark-themed button.
func (f *DarkFactory) CreateButton() Widget {
    return darkButton{out: f.out}
}

// CreateCheckbox returns a dark-themed checkbox.
func (f *DarkFactory) CreateCheckbox() Widget {
    return darkCheckbox{out: f.out}
}

// LightFactory creates light-themed widgets.
type LightFactory struct {
    out io.Writer // sink the produced widgets render to
}

// NewLightFactory returns a factory whose widgets render to out.  A nil out
// falls back to os.Stdout.
func NewLightFactory(out io.Writer) *LightFactory {
    if out == nil {
        out = os.Stdout
    }
    return &LightFactory{out: out}
}

// CreateButton returns a light-themed button.
func (f *LightFactory) CreateButton() Widget {
    return lightButton{out: f.out}
}

// CreateCheckbox returns a light-themed checkbox.
func (f *LightFactory) CreateCheckbox() Widget {
    return lightCheckbox{out: f.out}
}

type darkButton struct{ out io.Writer }

func (b darkButton) Render() {
    fmt.Fprintln(b.out, "Rendering a dark theme button.")
}

type darkCheckbox struct{ out io.Writer }

func (c darkCheckbox) Render() {
    fmt.Fprintln(c.out, "Rendering a dark theme checkbox.")
}

type lightButton struct{ out io.Writer }

func (b lightButton) Render() {
    fmt.Fprintln(b.out, "Rendering a light theme button.")
}

type lightCheckbox struct{ out io.Writer }

func (c lightCheckbox) Render() {
    fmt.Fprintln(c.out, "Rendering a light theme checkbox.")
}
