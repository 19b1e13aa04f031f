package media

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"majasdoc/internal/catalog"
)

func testDoc() *catalog.Document {
	return &catalog.Document{
		Rooms: []catalog.Room{
			{
				ID:     "kitchen",
				Name:   "Kitchen",
				Photos: []string{"kitchen-1.jpg"},
				Videos: []catalog.Video{
					{Title: "Tour", File: "tour.mp4", Thumbnail: "tour.jpg"},
					{Title: "Embed", File: "https://example.com/embed/abc"},
				},
			},
		},
	}
}

func writeFile(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReferences(t *testing.T) {
	refs := References(testDoc())
	var paths []string
	for _, r := range refs {
		paths = append(paths, r.Path)
	}
	// External video URLs are skipped.
	want := []string{"photos/kitchen-1.jpg", "videos/tour.mp4", "thumbnails/tour.jpg"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("References() = %v, want %v", paths, want)
	}
}

func TestCheck_AllPresent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photos/kitchen-1.jpg")
	writeFile(t, dir, "videos/tour.mp4")
	writeFile(t, dir, "thumbnails/tour.jpg")

	report, err := Check(testDoc(), dir, nil, nil, nil)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !report.OK() || report.Checked != 3 || len(report.Orphans) != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestCheck_Missing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photos/kitchen-1.jpg")

	report, err := Check(testDoc(), dir, nil, nil, nil)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if report.OK() {
		t.Fatal("report.OK() with missing files")
	}
	if len(report.Missing) != 2 {
		t.Errorf("missing = %v, want videos/tour.mp4 and thumbnails/tour.jpg", report.Missing)
	}
}

func TestCheck_Orphans(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photos/kitchen-1.jpg")
	writeFile(t, dir, "videos/tour.mp4")
	writeFile(t, dir, "thumbnails/tour.jpg")
	writeFile(t, dir, "photos/unused.jpg")
	writeFile(t, dir, "photos/.DS_Store")

	report, err := Check(testDoc(), dir, nil, []string{"**/.DS_Store"}, nil)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !reflect.DeepEqual(report.Orphans, []string{"photos/unused.jpg"}) {
		t.Errorf("orphans = %v, want [photos/unused.jpg]", report.Orphans)
	}
}

func TestCheck_ProgressCallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photos/kitchen-1.jpg")

	var calls []int
	_, err := Check(testDoc(), dir, nil, nil, func(done int, ref Reference) {
		calls = append(calls, done)
	})
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	want := len(References(testDoc()))
	if len(calls) != want || calls[len(calls)-1] != want {
		t.Errorf("callback calls = %v, want %d calls ending at %d", calls, want, want)
	}
}

func TestCheck_IncludeScopesOrphanScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photos/kitchen-1.jpg")
	writeFile(t, dir, "videos/tour.mp4")
	writeFile(t, dir, "thumbnails/tour.jpg")
	writeFile(t, dir, "photos/unused.jpg")
	writeFile(t, dir, "videos/unused.mp4")

	report, err := Check(testDoc(), dir, []string{"photos/**"}, nil, nil)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !reflect.DeepEqual(report.Orphans, []string{"photos/unused.jpg"}) {
		t.Errorf("orphans = %v, want only the photos one", report.Orphans)
	}
}
