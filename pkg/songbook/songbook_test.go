package songbook

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/kv"
)

func newBook(t *testing.T) (*Book, kv.Store) {
	t.Helper()
	store := kv.NewMemory(nil)
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

var beep = songs.New("beep", "Beep", 20, songs.N(440, 100), songs.N(880, 200))

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	b, _ := newBook(t)

	if err := b.Put(ctx, beep); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := b.Get(ctx, "beep")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Beep" || got.GapMs != 20 || got.NotesLength() != 2 {
		t.Errorf("Get = %+v", got)
	}
	if got.Notes()[1] != songs.N(880, 200) {
		t.Errorf("note 1 = %+v", got.Notes()[1])
	}
}

func TestGetBuiltIn(t *testing.T) {
	b, _ := newBook(t)
	got, err := b.Get(context.Background(), "ff7_victory_fanfare")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.NotesLength() != 9 {
		t.Errorf("NotesLength = %d, want 9", got.NotesLength())
	}
}

func TestGetNotFound(t *testing.T) {
	b, _ := newBook(t)
	for _, id := range []string{"missing", "", "a:b"} {
		if _, err := b.Get(context.Background(), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q) err = %v, want ErrNotFound", id, err)
		}
	}
}

func TestPutRejects(t *testing.T) {
	ctx := context.Background()
	b, _ := newBook(t)

	tests := []struct {
		name string
		song songs.Song
		want error
	}{
		{"built-in", songs.FF7VictoryFanfare, ErrReadOnly},
		{"invalid", songs.New("bad", "Bad", 0), songs.ErrInvalidSong},
		{"empty id", songs.New("", "X", 0, songs.N(440, 100)), songs.ErrInvalidSong},
		{"separator in id", songs.New("a:b", "X", 0, songs.N(440, 100)), songs.ErrInvalidSong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Put(ctx, tt.song); !errors.Is(err, tt.want) {
				t.Fatalf("Put err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	b, _ := newBook(t)

	if err := b.Put(ctx, beep); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := b.Delete(ctx, "beep"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := b.Get(ctx, "beep"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete err = %v", err)
	}
	if err := b.Delete(ctx, "beep"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
	if err := b.Delete(ctx, "ff7_victory_fanfare"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("Delete built-in err = %v, want ErrReadOnly", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	b, store := newBook(t)

	if err := b.Put(ctx, beep); err != nil {
		t.Fatalf("Put: %v", err)
	}
	// Corrupt entries are skipped.
	store.Set(ctx, kv.Key{"songbook", "garbage"}, []byte{0xc1})

	entries, err := b.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != len(songs.All)+1 {
		t.Fatalf("List returned %d entries, want %d", len(entries), len(songs.All)+1)
	}
	if !entries[0].BuiltIn || entries[0].Song.ID != "ff7_victory_fanfare" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	last := entries[len(entries)-1]
	if last.BuiltIn || last.Song.ID != "beep" {
		t.Errorf("last entry = %+v", last)
	}
}

func TestOpen(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	mem, err := Open(MemoryURI, quiet)
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	if _, ok := mem.(*kv.Memory); !ok {
		t.Errorf("Open(%q) = %T, want *kv.Memory", MemoryURI, mem)
	}
	mem.Close()

	disk, err := Open(t.TempDir(), quiet)
	if err != nil {
		t.Fatalf("Open dir: %v", err)
	}
	defer disk.Close()
	if _, ok := disk.(*kv.Badger); !ok {
		t.Errorf("Open(dir) = %T, want *kv.Badger", disk)
	}
}
