// Package input handles SDL2 input events for the viewer.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies processed input events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventMouseDrag
	EventDropFile
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
	// Relative mouse motion while the left button is held
	DragX float32
	DragY float32
	// Path of a file dropped onto the window
	Path string
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				i.events = append(i.events, Event{Type: EventQuit})
				return true
			}

		case *sdl.MouseMotionEvent:
			if e.State&sdl.BUTTON_LMASK != 0 {
				i.events = append(i.events, Event{
					Type:  EventMouseDrag,
					DragX: float32(e.XRel),
					DragY: float32(e.YRel),
				})
			}

		case *sdl.DropEvent:
			if e.Type == sdl.DROPFILE {
				i.events = append(i.events, Event{
					Type: EventDropFile,
					Path: e.File,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
