// Package media validates the on-disk media library against the
// catalog document: every referenced photo, thumbnail, and local video
// must exist, and files nothing references are reported as orphans.
package media

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"majasdoc/internal/catalog"
)

// Subdirectories of the media root, matching the paths the client
// resolves media references against.
const (
	PhotosDir     = "photos"
	VideosDir     = "videos"
	ThumbnailsDir = "thumbnails"
)

// Reference is one media file a room or video points at.
type Reference struct {
	RoomID string
	Path   string // relative to the media root, e.g. "photos/kitchen-1.jpg"
}

// Report is the outcome of a library check.
type Report struct {
	Checked int         // references examined
	Missing []Reference // referenced but absent on disk
	Orphans []string    // present on disk, referenced by nothing
}

// OK reports whether every reference resolved.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// References collects every local media path the document mentions.
// External video URLs are skipped; the library has no say over them.
func References(doc *catalog.Document) []Reference {
	var refs []Reference
	for _, room := range doc.Rooms {
		for _, photo := range room.Photos {
			refs = append(refs, Reference{RoomID: room.ID, Path: path.Join(PhotosDir, photo)})
		}
		for _, video := range room.Videos {
			if video.File != "" && !catalog.IsExternalURL(video.File) {
				refs = append(refs, Reference{RoomID: room.ID, Path: path.Join(VideosDir, video.File)})
			}
			if video.Thumbnail != "" {
				refs = append(refs, Reference{RoomID: room.ID, Path: path.Join(ThumbnailsDir, video.Thumbnail)})
			}
		}
	}
	return refs
}

// Check verifies every reference under mediaDir and scans for orphan
// files. include and exclude are doublestar patterns applied to the
// orphan scan (empty include means everything). progress, if non-nil,
// is called after each reference is examined.
func Check(doc *catalog.Document, mediaDir string, include, exclude []string, progress func(done int, ref Reference)) (Report, error) {
	refs := References(doc)
	report := Report{Checked: len(refs)}

	referenced := make(map[string]bool, len(refs))
	for i, ref := range refs {
		referenced[ref.Path] = true
		if _, err := os.Stat(filepath.Join(mediaDir, filepath.FromSlash(ref.Path))); err != nil {
			report.Missing = append(report.Missing, ref)
		}
		if progress != nil {
			progress(i+1, ref)
		}
	}

	err := filepath.WalkDir(mediaDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(mediaDir, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if referenced[rel] {
			return nil
		}
		if !matchesAny(rel, include, true) || matchesAny(rel, exclude, false) {
			return nil
		}
		report.Orphans = append(report.Orphans, rel)
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return report, err
	}
	sort.Strings(report.Orphans)
	return report, nil
}

// matchesAny checks rel against doublestar patterns. An empty pattern
// list yields the given default.
func matchesAny(rel string, patterns []string, whenEmpty bool) bool {
	if len(patterns) == 0 {
		return whenEmpty
	}
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}
