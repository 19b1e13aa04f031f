package nav

import (
	"strings"

	"majasdoc/internal/catalog"
	"majasdoc/internal/search"
)

// Transition is the single state-transition entry point. It is a pure
// function; callers re-render from the returned state afterwards.
// Unknown rooms and dead tags degrade to the home view rather than
// erroring.
func Transition(doc *catalog.Document, state State, event Event) State {
	switch ev := event.(type) {
	case DataLoaded:
		return dispatchFragment(doc, state, ev.Fragment)

	case FragmentChanged:
		return dispatchFragment(doc, state, ev.Fragment)

	case RoomSelected:
		if doc.RoomByID(ev.ID) == nil {
			return state
		}
		// Choosing a card from the grid clears any tag highlighting;
		// tag-chip shortcuts go through TagSelected and keep it.
		state.View = ViewRoomDetail
		state.RoomID = ev.ID
		state.ActiveTag = search.AllTag
		return state

	case BackPressed:
		return home(state)

	case TagSelected:
		return selectTag(doc, state, ev.Tag)

	case QuerySubmitted:
		state.Query = ev.Query
		return state
	}
	return state
}

// dispatchFragment runs the fragment protocol: "" means home,
// "room/<id>" means room-detail when the id resolves, and anything
// else (including a miss) falls back to home.
func dispatchFragment(doc *catalog.Document, state State, fragment string) State {
	if id, ok := strings.CutPrefix(fragment, "room/"); ok {
		if doc.RoomByID(id) != nil {
			state.View = ViewRoomDetail
			state.RoomID = id
			return state
		}
	}
	return home(state)
}

// selectTag applies the tag-resolution precedence from the filter
// engine to the navigation state.
func selectTag(doc *catalog.Document, state State, tag string) State {
	res := search.ResolveTag(doc, tag)
	switch res.Kind {
	case search.ResolveAll:
		return home(state)

	case search.ResolveRoom:
		// Navigation shortcut: go to the room, keep the active tag.
		state.View = ViewRoomDetail
		state.RoomID = res.Room.ID
		return state

	case search.ResolveContent:
		state.View = ViewFilteredContent
		state.RoomID = ""
		state.ActiveTag = tag
		return state

	default:
		// Tag exists in the index but matches nothing live; set it
		// anyway and show the standard (almost certainly empty) grid.
		state.View = ViewHome
		state.RoomID = ""
		state.ActiveTag = tag
		return state
	}
}

func home(state State) State {
	state.View = ViewHome
	state.RoomID = ""
	state.ActiveTag = search.AllTag
	return state
}

// Fragment maps a state back to its URL fragment: room-detail is
// routable as "room/<id>", every other view is the empty fragment.
func Fragment(state State) string {
	if state.View == ViewRoomDetail && state.RoomID != "" {
		return "room/" + state.RoomID
	}
	return ""
}
