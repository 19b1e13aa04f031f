package search

import (
	"strings"

	"majasdoc/internal/catalog"
)

// MaxSuggestions caps the combined suggestion list. Truncation may cut
// a category in the middle; there is no fairness across categories.
const MaxSuggestions = 10

// MinQueryLength is the shortest query that produces suggestions.
const MinQueryLength = 2

// SuggestionType identifies which category a suggestion came from.
type SuggestionType string

const (
	SuggestVideo     SuggestionType = "video"
	SuggestRoom      SuggestionType = "room"
	SuggestEquipment SuggestionType = "equipment"
	SuggestTag       SuggestionType = "tag"
)

// Suggestion is one entry in the search dropdown.
type Suggestion struct {
	Type       SuggestionType `json:"type"`
	Text       string         `json:"text"`
	RoomID     string         `json:"room_id,omitempty"`
	RoomName   string         `json:"room_name,omitempty"`
	VideoIndex int            `json:"video_index,omitempty"`
}

// Suggest assembles ranked suggestions for a query. Categories are
// computed independently and concatenated in fixed priority (videos,
// rooms, equipment, then raw index tags) before truncation, so a
// video suggestion always precedes a room one regardless of how many
// of each matched. Queries shorter than MinQueryLength yield nothing.
func Suggest(doc *catalog.Document, tagIndex []string, query string) []Suggestion {
	if len(query) < MinQueryLength {
		return nil
	}
	q := strings.ToLower(query)

	suggestions := videoSuggestions(doc, q)
	suggestions = append(suggestions, roomSuggestions(doc, q)...)
	suggestions = append(suggestions, equipmentSuggestions(doc, q)...)
	suggestions = append(suggestions, tagSuggestions(tagIndex, q)...)

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// videoSuggestions matches video titles and raw hashtags, one entry
// per matching video, annotated with the owning room.
func videoSuggestions(doc *catalog.Document, q string) []Suggestion {
	var out []Suggestion
	for _, room := range doc.Rooms {
		for i, video := range room.Videos {
			if videoMatches(&video, q) {
				out = append(out, Suggestion{
					Type:       SuggestVideo,
					Text:       video.Title,
					RoomID:     room.ID,
					RoomName:   room.Name,
					VideoIndex: i,
				})
			}
		}
	}
	return out
}

func videoMatches(video *catalog.Video, q string) bool {
	if strings.Contains(strings.ToLower(video.Title), q) {
		return true
	}
	for _, tag := range video.Hashtags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func roomSuggestions(doc *catalog.Document, q string) []Suggestion {
	var out []Suggestion
	for _, room := range doc.Rooms {
		if strings.Contains(strings.ToLower(room.Name), q) {
			out = append(out, Suggestion{Type: SuggestRoom, Text: room.Name, RoomID: room.ID})
		}
	}
	return out
}

// equipmentSuggestions deduplicates by entry text across rooms; the
// first room to mention a piece of equipment wins.
func equipmentSuggestions(doc *catalog.Document, q string) []Suggestion {
	var out []Suggestion
	seen := make(map[string]bool)
	for _, room := range doc.Rooms {
		for _, item := range room.Equipment {
			if !strings.Contains(strings.ToLower(item), q) {
				continue
			}
			if seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, Suggestion{Type: SuggestEquipment, Text: item, RoomID: room.ID})
		}
	}
	return out
}

func tagSuggestions(tagIndex []string, q string) []Suggestion {
	var out []Suggestion
	for _, tag := range tagIndex {
		if strings.Contains(tag, q) {
			out = append(out, Suggestion{Type: SuggestTag, Text: tag})
		}
	}
	return out
}
