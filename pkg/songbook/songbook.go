// Package songbook stores user songs next to the built-in catalog.
//
// Songs are kept in a kv.Store under the key {"songbook", <id>} as
// msgpack-encoded songs.Document values. Built-in songs are read-only: they
// are always visible and cannot be overwritten or deleted.
package songbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/kv"
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("songbook: song not found")
	ErrReadOnly = errors.New("songbook: built-in songs are read-only")
)

const keyPrefix = "songbook"

// MemoryURI selects an in-memory store in Open.
const MemoryURI = "memory://"

// Entry is a song listed by the book.
type Entry struct {
	Song    songs.Song
	BuiltIn bool
}

// Book is a song collection backed by a kv.Store.
type Book struct {
	store kv.Store
}

// New wraps store. The caller keeps ownership of the store.
func New(store kv.Store) *Book {
	return &Book{store: store}
}

// Open opens a store at path (a badger directory) or an in-memory store for
// MemoryURI. The caller must close the returned store.
func Open(path string, logger *slog.Logger) (kv.Store, error) {
	if path == "" || path == MemoryURI {
		return kv.NewMemory(nil), nil
	}
	store, err := kv.NewBadger(kv.BadgerOptions{Dir: path, Logger: logger})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func key(id string) kv.Key {
	return kv.Key{keyPrefix, id}
}

func validID(id string) error {
	if id == "" || strings.ContainsRune(id, rune(kv.DefaultSeparator)) {
		return fmt.Errorf("%w: bad id %q", songs.ErrInvalidSong, id)
	}
	return nil
}

// Put validates s and stores it, replacing any stored song with the same ID.
func (b *Book) Put(ctx context.Context, s songs.Song) error {
	if err := validID(s.ID); err != nil {
		return err
	}
	if songs.ByID(s.ID) != nil {
		return fmt.Errorf("%w: %q", ErrReadOnly, s.ID)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := songs.Encode(songs.FormatMsgpack, s)
	if err != nil {
		return fmt.Errorf("songbook: encode %q: %w", s.ID, err)
	}
	if err := b.store.Set(ctx, key(s.ID), data); err != nil {
		return fmt.Errorf("songbook: store %q: %w", s.ID, err)
	}
	slog.Debug("songbook: stored song", "id", s.ID, "notes", s.NotesLength())
	return nil
}

// Get returns a built-in song or a stored one.
func (b *Book) Get(ctx context.Context, id string) (songs.Song, error) {
	if s := songs.ByID(id); s != nil {
		return *s, nil
	}
	if err := validID(id); err != nil {
		return songs.Song{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	data, err := b.store.Get(ctx, key(id))
	if errors.Is(err, kv.ErrNotFound) {
		return songs.Song{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return songs.Song{}, fmt.Errorf("songbook: load %q: %w", id, err)
	}
	s, err := songs.Decode(songs.FormatMsgpack, data)
	if err != nil {
		return songs.Song{}, fmt.Errorf("songbook: load %q: %w", id, err)
	}
	return s, nil
}

// Delete removes a stored song.
func (b *Book) Delete(ctx context.Context, id string) error {
	if songs.ByID(id) != nil {
		return fmt.Errorf("%w: %q", ErrReadOnly, id)
	}
	if _, err := b.Get(ctx, id); err != nil {
		return err
	}
	if err := b.store.Delete(ctx, key(id)); err != nil {
		return fmt.Errorf("songbook: delete %q: %w", id, err)
	}
	return nil
}

// List returns the built-in songs followed by stored songs in ID order.
// Stored entries that fail to decode are skipped with a warning.
func (b *Book) List(ctx context.Context) ([]Entry, error) {
	entries := make([]Entry, 0, len(songs.All))
	for _, s := range songs.All {
		entries = append(entries, Entry{Song: s, BuiltIn: true})
	}
	for e, err := range b.store.List(ctx, kv.Key{keyPrefix}) {
		if err != nil {
			return nil, fmt.Errorf("songbook: list: %w", err)
		}
		s, err := songs.Decode(songs.FormatMsgpack, e.Value)
		if err != nil {
			slog.Warn("songbook: skipping unreadable entry", "key", e.Key.String(), "error", err)
			continue
		}
		entries = append(entries, Entry{Song: s})
	}
	return entries, nil
}
