package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

type payload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir(), zerolog.Nop())

	in := []payload{
		{ID: "1", Name: "ぬいぐるみ", Count: 10},
		{ID: "2", Name: "sticker", Count: 0},
	}
	if err := s.Set("prizes", in); err != nil {
		t.Fatal(err)
	}

	var out []payload
	found, err := s.Get("prizes", &out)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected found")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("got %+v want %+v", out, in)
	}
}

func TestFileStore_AbsentKey(t *testing.T) {
	s := NewFileStore(t.TempDir(), zerolog.Nop())
	var out []payload
	found, err := s.Get("prizes", &out)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("absent key reported found")
	}
}

func TestFileStore_CorruptContent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prizes.json"), []byte("corrupted data"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(dir, zerolog.Nop())

	var out []payload
	found, err := s.Get("prizes", &out)
	if err != nil {
		t.Fatalf("corrupt content must not error: %v", err)
	}
	if found {
		t.Error("corrupt content reported found")
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	s := NewFileStore(t.TempDir(), zerolog.Nop())
	s.Set("prizes", []payload{{ID: "1", Name: "old"}})
	s.Set("prizes", []payload{{ID: "2", Name: "new"}})

	var out []payload
	if found, _ := s.Get("prizes", &out); !found {
		t.Fatal("expected found")
	}
	if len(out) != 1 || out[0].ID != "2" {
		t.Errorf("got %+v", out)
	}
}

func TestFileStore_Remove(t *testing.T) {
	s := NewFileStore(t.TempDir(), zerolog.Nop())
	s.Set("prizes", []payload{{ID: "1"}})

	if err := s.Remove("prizes"); err != nil {
		t.Fatal(err)
	}
	var out []payload
	if found, _ := s.Get("prizes", &out); found {
		t.Error("removed key reported found")
	}
	// Removing again is fine.
	if err := s.Remove("prizes"); err != nil {
		t.Errorf("second remove: %v", err)
	}
}

func TestFileStore_Clear(t *testing.T) {
	s := NewFileStore(t.TempDir(), zerolog.Nop())
	s.Set("prizes", []payload{{ID: "1"}})
	s.Set("settings", map[string]string{"theme": "dark"})

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	var out []payload
	if found, _ := s.Get("prizes", &out); found {
		t.Error("prizes survived clear")
	}
	var settings map[string]string
	if found, _ := s.Get("settings", &settings); found {
		t.Error("settings survived clear")
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	first := NewFileStore(dir, zerolog.Nop())
	if err := first.Set("prizes", []payload{{ID: "1", Name: "A", Count: 2}}); err != nil {
		t.Fatal(err)
	}

	second := NewFileStore(dir, zerolog.Nop())
	var out []payload
	if found, _ := second.Get("prizes", &out); !found {
		t.Fatal("fresh instance cannot see persisted data")
	}
	if out[0].Name != "A" {
		t.Errorf("got %+v", out)
	}
}
