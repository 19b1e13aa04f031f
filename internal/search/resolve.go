package search

import "majasdoc/internal/catalog"

// ResolutionKind classifies what a selected tag turned out to be.
type ResolutionKind string

const (
	// ResolveAll means the "all" chip: clear the filter, go home.
	ResolveAll ResolutionKind = "all"
	// ResolveRoom means the tag names a room; treat the chip as a
	// navigation shortcut and keep the current tag highlighting.
	ResolveRoom ResolutionKind = "room"
	// ResolveContent means videos carry the tag; show the combined
	// rooms-and-videos view.
	ResolveContent ResolutionKind = "content"
	// ResolveNone means the tag matches nothing live. The caller sets
	// the tag anyway and renders the (almost certainly empty) home grid.
	ResolveNone ResolutionKind = "none"
)

// VideoMatch pairs a matching video with its owning room.
type VideoMatch struct {
	Video catalog.Video `json:"video"`
	Room  catalog.Room  `json:"room"`
}

// Resolution is the outcome of selecting a tag chip.
type Resolution struct {
	Kind    ResolutionKind `json:"kind"`
	Tag     string         `json:"tag"`
	Room    *catalog.Room  `json:"room,omitempty"`
	Rooms   []catalog.Room `json:"rooms,omitempty"`
	Matches []VideoMatch   `json:"matches,omitempty"`
}

// ResolveTag decides what selecting a tag means, in priority order:
// the "all" chip, a room-ID shortcut, a cross-cutting content match,
// or nothing. Room navigation deliberately wins over filtering when a
// hashtag collides with a room ID; existing navigation flows depend on
// that precedence.
func ResolveTag(doc *catalog.Document, tag string) Resolution {
	if tag == AllTag {
		return Resolution{Kind: ResolveAll, Tag: tag}
	}

	if room := doc.RoomByID(tag); room != nil {
		return Resolution{Kind: ResolveRoom, Tag: tag, Room: room}
	}

	want := catalog.NormalizeTag(tag)
	var matches []VideoMatch
	var rooms []catalog.Room
	seenRoom := make(map[string]bool)
	for _, room := range doc.Rooms {
		for _, video := range room.Videos {
			if video.HasHashtag(want) {
				matches = append(matches, VideoMatch{Video: video, Room: room})
				if !seenRoom[room.ID] {
					seenRoom[room.ID] = true
					rooms = append(rooms, room)
				}
			}
		}
	}
	if len(matches) > 0 {
		return Resolution{Kind: ResolveContent, Tag: tag, Rooms: rooms, Matches: matches}
	}

	return Resolution{Kind: ResolveNone, Tag: tag}
}
