package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testDoc() *Document {
	return &Document{
		Rooms: []Room{
			{
				ID:   "kitchen",
				Name: "Kitchen",
				Videos: []Video{
					{Title: "Tour", File: "tour.mp4", Hashtags: []string{"#tour", "kitchen"}},
				},
				Photos:    []string{"kitchen-1.jpg"},
				Equipment: []string{"Dishwasher"},
			},
			{
				ID:   "hallway",
				Name: "Hallway",
				Videos: []Video{
					{Title: "Walkthrough", File: "https://example.com/embed/abc", Hashtags: []string{"#Tour"}},
				},
			},
		},
	}
}

func TestParse_MissingRooms(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"empty rooms", `{"rooms": []}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrNoRooms) {
				t.Fatalf("Parse(%s) error = %v, want ErrNoRooms", tc.data, err)
			}
		})
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"rooms": [`))
	if err == nil {
		t.Fatal("Parse() succeeded on malformed JSON")
	}
}

func TestParse_OptionalFieldsAbsent(t *testing.T) {
	doc, err := Parse([]byte(`{"rooms":[{"id":"attic","name":"Attic"}]}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	room := doc.Rooms[0]
	if room.Description != "" || room.Videos != nil || room.Photos != nil || room.Equipment != nil {
		t.Errorf("absent optional fields not zero: %+v", room)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	if err == nil {
		t.Fatal("Load() succeeded on a missing file")
	}
}

func TestNormalizeTag(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#Kitchen", "kitchen"},
		{"kitchen", "kitchen"},
		{"#tour", "tour"},
		{"TOUR", "tour"},
		{"", ""},
		{"#", ""},
	}
	for _, tc := range cases {
		if got := NormalizeTag(tc.in); got != tc.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTag_Idempotent(t *testing.T) {
	for _, tag := range []string{"#Kitchen", "tour", "#a#b", "Vannas-Istaba"} {
		once := NormalizeTag(tag)
		if twice := NormalizeTag(once); twice != once {
			t.Errorf("NormalizeTag not idempotent: %q -> %q -> %q", tag, once, twice)
		}
	}
}

func TestTagIndex(t *testing.T) {
	doc := testDoc()
	got := doc.TagIndex()
	// Room IDs plus normalized hashtags, deduplicated (both rooms carry
	// some spelling of "tour"), sorted.
	want := []string{"hallway", "kitchen", "tour"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagIndex() = %v, want %v", got, want)
	}
}

func TestRoomByID(t *testing.T) {
	doc := testDoc()
	if room := doc.RoomByID("kitchen"); room == nil || room.Name != "Kitchen" {
		t.Errorf("RoomByID(kitchen) = %+v", room)
	}
	// Lookup normalizes its argument.
	if room := doc.RoomByID("#Kitchen"); room == nil || room.ID != "kitchen" {
		t.Errorf("RoomByID(#Kitchen) = %+v", room)
	}
	if room := doc.RoomByID("bathroom"); room != nil {
		t.Errorf("RoomByID(bathroom) = %+v, want nil", room)
	}
}

func TestIsExternalURL(t *testing.T) {
	cases := []struct {
		file string
		want bool
	}{
		{"https://example.com/embed/abc", true},
		{"http://example.com/v.mp4", true},
		{"tour.mp4", false},
		{"httpsfile.mp4", false},
	}
	for _, tc := range cases {
		if got := IsExternalURL(tc.file); got != tc.want {
			t.Errorf("IsExternalURL(%q) = %v, want %v", tc.file, got, tc.want)
		}
	}
}

func TestHasHashtag(t *testing.T) {
	video := &Video{Hashtags: []string{"#Tour", "kitchen"}}
	for _, tag := range []string{"tour", "#tour", "TOUR", "kitchen"} {
		if !video.HasHashtag(tag) {
			t.Errorf("HasHashtag(%q) = false", tag)
		}
	}
	if video.HasHashtag("bathroom") {
		t.Error("HasHashtag(bathroom) = true")
	}
}

func TestRenderDescription(t *testing.T) {
	if got := RenderDescription(""); got != "" {
		t.Errorf("RenderDescription(\"\") = %q", got)
	}
	html := string(RenderDescription("The **main** oven"))
	if !strings.Contains(html, "<strong>main</strong>") {
		t.Errorf("markdown emphasis not rendered: %q", html)
	}
}
