// Package nav is the navigation state machine: a pure reducer over
// view, active room, active tag, and query, plus the URL fragment
// protocol and the render-model dispatch. It has no presentation
// dependencies, so the whole machine is testable without a client.
package nav

import "majasdoc/internal/search"

// View names one of the three top-level screens.
type View string

const (
	ViewHome            View = "home"
	ViewRoomDetail      View = "room-detail"
	ViewFilteredContent View = "filtered-content"
)

// State is the complete navigation state. The filtered-content room
// and video sets are not part of it; they are re-derived from the
// active tag on render, which keeps the state routable and small.
type State struct {
	View      View   `json:"view"`
	RoomID    string `json:"room_id,omitempty"`
	ActiveTag string `json:"active_tag"`
	Query     string `json:"query,omitempty"`
}

// Home is the initial state: home view, no filter, no query.
func Home() State {
	return State{View: ViewHome, ActiveTag: search.AllTag}
}

// Event is a navigation input. Exactly one of the event types below is
// dispatched per user interaction or browser event.
type Event interface{ isEvent() }

// DataLoaded fires once after the document load succeeds; it
// re-dispatches the current fragment so a deep link lands directly on
// its room.
type DataLoaded struct {
	Fragment string
}

// FragmentChanged fires when the URL fragment changes outside an
// in-app navigation (address bar edit, back/forward).
type FragmentChanged struct {
	Fragment string
}

// RoomSelected fires when a room card is chosen from the grid.
type RoomSelected struct {
	ID string
}

// BackPressed fires on the back-in-detail control.
type BackPressed struct{}

// TagSelected fires when a tag chip is chosen.
type TagSelected struct {
	Tag string
}

// QuerySubmitted carries a (debounced) search query change.
type QuerySubmitted struct {
	Query string
}

func (DataLoaded) isEvent()      {}
func (FragmentChanged) isEvent() {}
func (RoomSelected) isEvent()    {}
func (BackPressed) isEvent()     {}
func (TagSelected) isEvent()     {}
func (QuerySubmitted) isEvent()  {}
