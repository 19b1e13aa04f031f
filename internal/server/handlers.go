package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"majasdoc/internal/authgate"
	"majasdoc/internal/catalog"
	"majasdoc/internal/nav"
	"majasdoc/internal/prefs"
	"majasdoc/internal/search"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleData returns the whole document: the client's one-shot fetch.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.doc)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tags": s.tagIndex})
}

// handleRooms runs the room filter: ?tag= (default "all") and ?q=.
func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		tag = search.AllTag
	}
	query := r.URL.Query().Get("q")

	rooms := search.FilterRooms(s.doc.Rooms, tag, query)
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms":      rooms,
		"no_results": len(rooms) == 0,
	})
}

// handleRoom returns one room with its markdown fields rendered for
// the detail view.
func (s *Server) handleRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	room := s.doc.RoomByID(id)
	if room == nil {
		writeError(w, http.StatusNotFound, "unknown room: "+id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"room":             room,
		"description_html": catalog.RenderDescription(room.Description),
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	suggestions := search.Suggest(s.doc, s.tagIndex, query)
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeError(w, http.StatusBadRequest, "tag is required")
		return
	}
	writeJSON(w, http.StatusOK, search.ResolveTag(s.doc, tag))
}

// transitionRequest is the reducer-over-the-wire payload.
type transitionRequest struct {
	State nav.State       `json:"state"`
	Event json.RawMessage `json:"event"`
}

// transitionEvent is the tagged union carried in the event field.
type transitionEvent struct {
	Type     string `json:"type"`
	Fragment string `json:"fragment,omitempty"`
	ID       string `json:"id,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Query    string `json:"query,omitempty"`
}

// decodeEvent maps the wire form onto a nav.Event.
func decodeEvent(raw json.RawMessage) (nav.Event, error) {
	var ev transitionEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, err
	}
	switch ev.Type {
	case "data-loaded":
		return nav.DataLoaded{Fragment: ev.Fragment}, nil
	case "fragment-changed":
		return nav.FragmentChanged{Fragment: ev.Fragment}, nil
	case "room-selected":
		return nav.RoomSelected{ID: ev.ID}, nil
	case "back-pressed":
		return nav.BackPressed{}, nil
	case "tag-selected":
		return nav.TagSelected{Tag: ev.Tag}, nil
	case "query-submitted":
		return nav.QuerySubmitted{Query: ev.Query}, nil
	}
	return nil, errUnknownEvent(ev.Type)
}

type errUnknownEvent string

func (e errUnknownEvent) Error() string { return "unknown event type: " + string(e) }

// handleTransition runs one reducer step and returns the new state
// with its render model, so thin clients share a single navigation
// implementation.
func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.State.View == "" {
		req.State = nav.Home()
	}
	event, err := decodeEvent(req.Event)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state := nav.Transition(s.doc, req.State, event)
	writeJSON(w, http.StatusOK, map[string]any{
		"state":    state,
		"fragment": nav.Fragment(state),
		"view":     nav.BuildView(s.doc, state),
	})
}

// validPrefValues constrains the two fixed keys; other keys are free-form.
var validPrefValues = map[string]map[string]bool{
	prefs.KeyTheme:    {"dark": true, "light": true},
	prefs.KeyViewMode: {"grid": true, "list": true},
}

func prefDefault(key string) string {
	switch key {
	case prefs.KeyTheme:
		return prefs.DefaultTheme
	case prefs.KeyViewMode:
		return prefs.DefaultViewMode
	}
	return ""
}

func (s *Server) handleGetPref(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, ok, err := s.store.Get(key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		value = prefDefault(key)
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

func (s *Server) handleSetPref(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if allowed, constrained := validPrefValues[key]; constrained && !allowed[body.Value] {
		writeError(w, http.StatusBadRequest, "invalid value for "+key)
		return
	}
	if err := s.store.Set(key, body.Value); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": body.Value})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !authgate.Verify(body.Username, body.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	authgate.SetSession(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	authgate.ClearSession(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
