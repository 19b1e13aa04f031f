package nav

import (
	"testing"

	"majasdoc/internal/catalog"
	"majasdoc/internal/search"
)

func testDoc() *catalog.Document {
	return &catalog.Document{
		Rooms: []catalog.Room{
			{
				ID:   "kitchen",
				Name: "Kitchen",
				Videos: []catalog.Video{
					{Title: "Tour", File: "tour.mp4", Hashtags: []string{"#tour", "kitchen"}},
				},
			},
			{
				ID:   "hallway",
				Name: "Hallway",
				Videos: []catalog.Video{
					{Title: "Walkthrough", File: "walk.mp4", Hashtags: []string{"#tour"}},
				},
			},
		},
	}
}

func TestTransition_FragmentProtocol(t *testing.T) {
	doc := testDoc()
	cases := []struct {
		fragment string
		wantView View
		wantRoom string
	}{
		{"", ViewHome, ""},
		{"room/kitchen", ViewRoomDetail, "kitchen"},
		{"room/bathroom", ViewHome, ""}, // Scenario C: unknown room falls back to home
		{"garbage", ViewHome, ""},
		{"room/", ViewHome, ""},
	}
	for _, tc := range cases {
		got := Transition(doc, Home(), FragmentChanged{Fragment: tc.fragment})
		if got.View != tc.wantView || got.RoomID != tc.wantRoom {
			t.Errorf("fragment %q -> view=%q room=%q, want view=%q room=%q",
				tc.fragment, got.View, got.RoomID, tc.wantView, tc.wantRoom)
		}
	}
}

func TestTransition_FragmentRoundTrip(t *testing.T) {
	// Navigating to a room and re-dispatching the resulting fragment
	// yields the same room-detail state as the direct navigation.
	doc := testDoc()
	direct := Transition(doc, Home(), RoomSelected{ID: "kitchen"})
	fragment := Fragment(direct)
	if fragment != "room/kitchen" {
		t.Fatalf("Fragment() = %q", fragment)
	}
	redispatched := Transition(doc, Home(), FragmentChanged{Fragment: fragment})
	if redispatched != direct {
		t.Errorf("round trip mismatch: %+v vs %+v", redispatched, direct)
	}
}

func TestTransition_RoomSelectedResetsTag(t *testing.T) {
	doc := testDoc()
	state := Home()
	state.ActiveTag = "tour"
	got := Transition(doc, state, RoomSelected{ID: "hallway"})
	if got.View != ViewRoomDetail || got.RoomID != "hallway" {
		t.Fatalf("state after RoomSelected: %+v", got)
	}
	if got.ActiveTag != search.AllTag {
		t.Errorf("card selection kept ActiveTag %q, want all", got.ActiveTag)
	}
}

func TestTransition_RoomSelectedUnknownIsNoop(t *testing.T) {
	doc := testDoc()
	state := Home()
	if got := Transition(doc, state, RoomSelected{ID: "bathroom"}); got != state {
		t.Errorf("unknown room changed state: %+v", got)
	}
}

func TestTransition_BackPressed(t *testing.T) {
	doc := testDoc()
	state := State{View: ViewRoomDetail, RoomID: "kitchen", ActiveTag: "tour"}
	got := Transition(doc, state, BackPressed{})
	if got.View != ViewHome || got.RoomID != "" || got.ActiveTag != search.AllTag {
		t.Errorf("state after back: %+v", got)
	}
}

func TestTransition_TagAll(t *testing.T) {
	doc := testDoc()
	state := State{View: ViewFilteredContent, ActiveTag: "tour"}
	got := Transition(doc, state, TagSelected{Tag: search.AllTag})
	if got.View != ViewHome || got.ActiveTag != search.AllTag {
		t.Errorf("state after all chip: %+v", got)
	}
}

func TestTransition_TagRoomShortcutKeepsHighlight(t *testing.T) {
	// A chip naming a room navigates there and keeps the active tag.
	doc := testDoc()
	state := Home()
	state.ActiveTag = "tour"
	got := Transition(doc, state, TagSelected{Tag: "kitchen"})
	if got.View != ViewRoomDetail || got.RoomID != "kitchen" {
		t.Fatalf("state after room chip: %+v", got)
	}
	if got.ActiveTag != "tour" {
		t.Errorf("room chip reset ActiveTag to %q", got.ActiveTag)
	}
}

func TestTransition_TagContent(t *testing.T) {
	doc := testDoc()
	got := Transition(doc, Home(), TagSelected{Tag: "tour"})
	if got.View != ViewFilteredContent || got.ActiveTag != "tour" || got.RoomID != "" {
		t.Errorf("state after content tag: %+v", got)
	}
}

func TestTransition_TagDeadFallsBackToHome(t *testing.T) {
	doc := testDoc()
	state := State{View: ViewRoomDetail, RoomID: "kitchen", ActiveTag: search.AllTag}
	got := Transition(doc, state, TagSelected{Tag: "cellar"})
	if got.View != ViewHome || got.ActiveTag != "cellar" {
		t.Errorf("state after dead tag: %+v", got)
	}
}

func TestTransition_Query(t *testing.T) {
	doc := testDoc()
	got := Transition(doc, Home(), QuerySubmitted{Query: "kitch"})
	if got.Query != "kitch" || got.View != ViewHome {
		t.Errorf("state after query: %+v", got)
	}
}

func TestTransition_DataLoadedDispatchesFragment(t *testing.T) {
	doc := testDoc()
	got := Transition(doc, Home(), DataLoaded{Fragment: "room/hallway"})
	if got.View != ViewRoomDetail || got.RoomID != "hallway" {
		t.Errorf("state after load with deep link: %+v", got)
	}
}

func TestBuildView_Home(t *testing.T) {
	doc := testDoc()
	model := BuildView(doc, Home())
	if model.View != ViewHome || len(model.Rooms) != 2 || model.NoResults {
		t.Errorf("home model: view=%q rooms=%d noResults=%v", model.View, len(model.Rooms), model.NoResults)
	}
	if len(model.Tags) == 0 {
		t.Error("home model has no tag chips")
	}
}

func TestBuildView_FilteredContentRederives(t *testing.T) {
	doc := testDoc()
	state := Transition(doc, Home(), TagSelected{Tag: "tour"})
	model := BuildView(doc, state)
	if model.View != ViewFilteredContent {
		t.Fatalf("view = %q", model.View)
	}
	if len(model.Rooms) != 2 || len(model.Matches) != 2 {
		t.Errorf("filtered content: rooms=%d matches=%d", len(model.Rooms), len(model.Matches))
	}
}

func TestBuildView_DeadTagShowsNoResults(t *testing.T) {
	doc := testDoc()
	state := Transition(doc, Home(), TagSelected{Tag: "cellar"})
	model := BuildView(doc, state)
	if model.View != ViewHome || !model.NoResults || len(model.Rooms) != 0 {
		t.Errorf("dead tag model: %+v", model)
	}
}

func TestBuildView_RoomDetail(t *testing.T) {
	doc := testDoc()
	state := Transition(doc, Home(), RoomSelected{ID: "kitchen"})
	model := BuildView(doc, state)
	if model.Room == nil || model.Room.ID != "kitchen" {
		t.Errorf("room detail model: %+v", model.Room)
	}
}
