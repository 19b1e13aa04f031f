package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrNoRooms indicates a document without a rooms sequence. A document
// like this is unusable and must not be partially rendered.
var ErrNoRooms = errors.New("document has no rooms")

// Document is the root catalog object, loaded once per session and
// read-only afterwards.
type Document struct {
	Rooms []Room `json:"rooms"`
}

// Room is a modeled physical space with attached media and metadata.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Videos      []Video  `json:"videos,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
}

// Video is a media item owned by exactly one room. File is either an
// absolute http(s) URL or a bare filename under the local videos path.
type Video struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	File        string   `json:"file"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Hashtags    []string `json:"hashtags,omitempty"`
}

// Parse decodes a catalog document from JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if len(doc.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", path, err)
	}
	return doc, nil
}

// NormalizeTag strips one leading '#' and lowercases. Idempotent: a
// normalized tag normalizes to itself.
func NormalizeTag(tag string) string {
	tag = strings.TrimPrefix(tag, "#")
	return strings.ToLower(tag)
}

// TagIndex derives the full filter-tag set: every room ID plus every
// normalized video hashtag, deduplicated, sorted lexicographically.
// Room IDs and hashtags share one namespace. The index is always
// recomputed from the whole document, never patched.
func (d *Document) TagIndex() []string {
	seen := make(map[string]bool)
	for _, room := range d.Rooms {
		seen[NormalizeTag(room.ID)] = true
	}
	for _, room := range d.Rooms {
		for _, video := range room.Videos {
			for _, tag := range video.Hashtags {
				seen[NormalizeTag(tag)] = true
			}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// RoomByID returns the room with the given ID, or nil. IDs are
// lowercase by convention; the lookup normalizes both sides.
func (d *Document) RoomByID(id string) *Room {
	want := NormalizeTag(id)
	for i := range d.Rooms {
		if NormalizeTag(d.Rooms[i].ID) == want {
			return &d.Rooms[i]
		}
	}
	return nil
}

// IsExternalURL reports whether a video file reference points to an
// external player rather than the local media path.
func IsExternalURL(file string) bool {
	return strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://")
}

// HasHashtag reports whether the video carries the given tag,
// comparing normalized forms.
func (v *Video) HasHashtag(tag string) bool {
	want := NormalizeTag(tag)
	for _, t := range v.Hashtags {
		if NormalizeTag(t) == want {
			return true
		}
	}
	return false
}
