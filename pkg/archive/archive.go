// Package archive reads uploaded game bundles. A bundle is a zip whose
// entries all live under a top-level folder named after the archive itself
// ("mygame.zip" contains "mygame/index.html", "mygame/assets/sprite.png").
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// junkNames are OS metadata files excluded from bundles, matched
// case-insensitively against the entry base name.
var junkNames = map[string]struct{}{
	".ds_store":   {},
	"thumbs.db":   {},
	"desktop.ini": {},
}

// Entry is a single qualifying file inside an open bundle.
type Entry struct {
	// Name is the full path of the entry within the archive.
	Name string
	// RelPath is the entry path with the leading archive-stem segment
	// stripped, e.g. "assets/sprite.png" for "mygame/assets/sprite.png".
	RelPath string
	// Size is the decompressed size in bytes.
	Size int64

	file   *zip.File
	reader *Reader
}

// Open returns a reader over the entry's decompressed content. The stream
// is closed by Reader.Close if the caller has not closed it already.
func (e *Entry) Open() (io.ReadCloser, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", e.Name, err)
	}
	e.reader.opened = append(e.reader.opened, rc)
	return rc, nil
}

// Reader opens, validates and filters a bundle archive. The zero value is
// ready to use; call Open before reading entries.
type Reader struct {
	stem    string
	raw     []byte
	zr      *zip.Reader
	entries []*zip.File
	pos     int
	opened  []io.ReadCloser
}

// Open parses and validates the archive. name is the uploaded archive's
// filename; its stem (base name without extension) decides which entries
// qualify. Every entry is integrity-tested up front: a single corrupt
// entry fails the whole open. A failed Open leaves the reader exactly as
// it was, so retrying is safe.
func (r *Reader) Open(name string, data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	for _, f := range zr.File {
		if err := testEntry(f); err != nil {
			return fmt.Errorf("corrupt entry %s: %w", f.Name, err)
		}
	}

	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))

	var entries []*zip.File
	for _, f := range zr.File {
		if qualifies(f, stem) {
			entries = append(entries, f)
		}
	}

	// Validated; safe to replace any previously open state.
	r.Close()
	r.stem = stem
	r.raw = data
	r.zr = zr
	r.entries = entries
	r.pos = 0
	return nil
}

// IsOpen reports whether the reader currently holds an open archive.
func (r *Reader) IsOpen() bool {
	return r.zr != nil
}

// Len returns the number of qualifying entries in the archive.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Next returns the next qualifying entry, or io.EOF when the sequence is
// exhausted. The sequence is finite and cannot be restarted.
func (r *Reader) Next() (*Entry, error) {
	if !r.IsOpen() {
		return nil, fmt.Errorf("archive is not open")
	}
	if r.pos >= len(r.entries) {
		return nil, io.EOF
	}

	f := r.entries[r.pos]
	r.pos++

	rel := f.Name
	if i := strings.Index(rel, "/"); i >= 0 {
		rel = rel[i+1:]
	}

	return &Entry{
		Name:    f.Name,
		RelPath: rel,
		Size:    int64(f.UncompressedSize64),
		file:    f,
		reader:  r,
	}, nil
}

// Raw returns the original archive bytes, for uploading a backup copy.
func (r *Reader) Raw() []byte {
	return r.raw
}

// Close releases every entry stream handed out by Next, then the archive
// itself. It is safe to call multiple times; closing a closed reader is a
// no-op.
func (r *Reader) Close() {
	for _, rc := range r.opened {
		_ = rc.Close()
	}
	r.opened = nil
	r.zr = nil
	r.entries = nil
	r.raw = nil
	r.pos = 0
}

// testEntry fully reads an entry's decompressed stream so the CRC check
// runs, without retaining anything.
func testEntry(f *zip.File) error {
	if f.FileInfo().IsDir() {
		return nil
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	_, copyErr := io.Copy(io.Discard, rc)
	closeErr := rc.Close()
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}

// qualifies filters out directories, entries outside the archive's own
// top-level folder, and OS junk files. The first path segment must equal
// the stem exactly; a prefix match would let "mygame-evil/..." through.
func qualifies(f *zip.File, stem string) bool {
	if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
		return false
	}

	segments := strings.Split(f.Name, "/")
	if segments[0] != stem {
		return false
	}

	for _, seg := range segments {
		if strings.EqualFold(seg, "__macosx") {
			return false
		}
	}

	base := strings.ToLower(segments[len(segments)-1])
	if _, junk := junkNames[base]; junk {
		return false
	}
	if strings.HasPrefix(base, "._") {
		return false
	}

	return true
}
