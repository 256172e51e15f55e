package songs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// Document is the serialized form of a Song.
//
// NotesLength is written on encode for consumers that need an explicit
// count. On decode it is optional, but when present (including 0) it must
// match Notes.
type Document struct {
	ID          string `json:"id" yaml:"id" msgpack:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	NotesLength *int   `json:"notes_length,omitempty" yaml:"notes_length,omitempty" msgpack:"notes_length,omitempty"`
	GapMs       int    `json:"note_interior_end_gap_ms" yaml:"note_interior_end_gap_ms" msgpack:"note_interior_end_gap_ms"`
	Notes       []Note `json:"notes" yaml:"notes" msgpack:"notes"`
}

// Document returns the serialized form of s.
func (s Song) Document() Document {
	n := len(s.notes)
	return Document{
		ID:          s.ID,
		Name:        s.Name,
		NotesLength: &n,
		GapMs:       s.GapMs,
		Notes:       s.Notes(),
	}
}

// Song converts the document back into a validated Song.
func (d Document) Song() (Song, error) {
	if d.NotesLength != nil && *d.NotesLength != len(d.Notes) {
		return Song{}, fmt.Errorf("%w: %q declares %d notes, has %d", ErrLengthMismatch, d.ID, *d.NotesLength, len(d.Notes))
	}
	if d.ID == "" {
		return Song{}, fmt.Errorf("%w: missing id", ErrInvalidSong)
	}
	s := New(d.ID, d.Name, d.GapMs, d.Notes...)
	if err := s.Validate(); err != nil {
		return Song{}, err
	}
	return s, nil
}

// Format is a serialization format for songs.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat parses a format name. "yml" and "mp" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("songs: unsupported format %q", s)
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("songs: cannot infer format of %q", path)
	}
	return ParseFormat(ext)
}

// Encode serializes s in the given format.
func Encode(f Format, s Song) ([]byte, error) {
	doc := s.Document()
	switch f {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(doc)
	default:
		return nil, fmt.Errorf("songs: unsupported format %q", f)
	}
}

// Decode parses a song in the given format and validates it.
// Unknown fields are rejected.
func Decode(f Format, data []byte) (Song, error) {
	var doc Document
	switch f {
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
			return Song{}, fmt.Errorf("songs: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Song{}, fmt.Errorf("songs: decode json: %w", err)
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return Song{}, fmt.Errorf("songs: decode msgpack: %w", err)
		}
	default:
		return Song{}, fmt.Errorf("songs: unsupported format %q", f)
	}
	return doc.Song()
}
