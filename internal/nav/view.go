package nav

import (
	"majasdoc/internal/catalog"
	"majasdoc/internal/search"
)

// RenderModel is everything a client needs to draw a state. It is a
// pure function of the state: re-deriving it after any transition
// yields exactly what an incremental update would have shown.
type RenderModel struct {
	View      View                `json:"view"`
	Tags      []string            `json:"tags"`
	ActiveTag string              `json:"active_tag"`
	Query     string              `json:"query,omitempty"`
	Rooms     []catalog.Room      `json:"rooms,omitempty"`
	Room      *catalog.Room       `json:"room,omitempty"`
	Matches   []search.VideoMatch `json:"matches,omitempty"`
	NoResults bool                `json:"no_results"`
}

// BuildView computes the render model for a state. The filtered-content
// room and video sets are re-derived here by re-invoking tag
// resolution; they are never persisted in the state itself.
func BuildView(doc *catalog.Document, state State) RenderModel {
	model := RenderModel{
		View:      state.View,
		Tags:      doc.TagIndex(),
		ActiveTag: state.ActiveTag,
		Query:     state.Query,
	}

	switch state.View {
	case ViewRoomDetail:
		model.Room = doc.RoomByID(state.RoomID)
		if model.Room == nil {
			// Stale state; degrade to the home grid.
			model.View = ViewHome
			model.Rooms = search.FilterRooms(doc.Rooms, state.ActiveTag, state.Query)
			model.NoResults = len(model.Rooms) == 0
		}

	case ViewFilteredContent:
		res := search.ResolveTag(doc, state.ActiveTag)
		model.Rooms = res.Rooms
		model.Matches = res.Matches
		model.NoResults = len(res.Rooms) == 0 && len(res.Matches) == 0

	default:
		model.Rooms = search.FilterRooms(doc.Rooms, state.ActiveTag, state.Query)
		model.NoResults = len(model.Rooms) == 0
	}

	return model
}
