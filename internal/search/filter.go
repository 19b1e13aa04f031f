// Package search implements room filtering, tag resolution, and ranked
// search suggestions over a loaded catalog document.
package search

import (
	"strings"

	"majasdoc/internal/catalog"
)

// AllTag is the default active tag meaning "no filter applied".
const AllTag = "all"

// FilterRooms applies the active tag and free-text query as two
// sequential narrowing passes. Both passes are no-ops under their
// default values ("all" and ""), compose by intersection, and preserve
// the document's room order.
func FilterRooms(rooms []catalog.Room, activeTag, query string) []catalog.Room {
	filtered := rooms

	if activeTag != AllTag {
		want := catalog.NormalizeTag(activeTag)
		var out []catalog.Room
		for _, room := range filtered {
			if roomMatchesTag(&room, want) {
				out = append(out, room)
			}
		}
		filtered = out
	}

	if query != "" {
		q := strings.ToLower(query)
		var out []catalog.Room
		for _, room := range filtered {
			if roomMatchesQuery(&room, q) {
				out = append(out, room)
			}
		}
		filtered = out
	}

	return filtered
}

// roomMatchesTag reports whether the room's normalized ID equals the
// normalized tag, or any of its videos carries the tag.
func roomMatchesTag(room *catalog.Room, normalized string) bool {
	if catalog.NormalizeTag(room.ID) == normalized {
		return true
	}
	for i := range room.Videos {
		if room.Videos[i].HasHashtag(normalized) {
			return true
		}
	}
	return false
}

// roomMatchesQuery does a case-insensitive substring match across the
// room's name, description, equipment, and every video's title,
// description, and raw hashtags. Hashtags are searched raw so a query
// containing '#' still matches.
func roomMatchesQuery(room *catalog.Room, q string) bool {
	if strings.Contains(strings.ToLower(room.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(room.Description), q) {
		return true
	}
	for _, item := range room.Equipment {
		if strings.Contains(strings.ToLower(item), q) {
			return true
		}
	}
	for _, video := range room.Videos {
		if strings.Contains(strings.ToLower(video.Title), q) {
			return true
		}
		if strings.Contains(strings.ToLower(video.Description), q) {
			return true
		}
		for _, tag := range video.Hashtags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
	}
	return false
}
