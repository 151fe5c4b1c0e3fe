package prize

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/storage"
)

func newTestService(t *testing.T) (*Service, *storage.FileStore) {
	t.Helper()
	store := storage.NewFileStore(t.TempDir(), zerolog.Nop())
	return NewService(store, zerolog.Nop()), store
}

func TestService_Add(t *testing.T) {
	svc, store := newTestService(t)

	p, err := svc.Add(AddRequest{Name: "ぬいぐるみ", ImageURL: "http://example.com/a.png", Stock: 10})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("expected an assigned ID")
	}
	if p.CreatedAt == 0 {
		t.Error("expected an assigned CreatedAt")
	}

	prizes := svc.Prizes()
	if len(prizes) != 1 || prizes[0].ID != p.ID {
		t.Fatalf("collection: %+v", prizes)
	}

	// Write-through: a fresh read of the store sees the full collection.
	var saved []Prize
	found, err := store.Get("prizes", &saved)
	if err != nil || !found {
		t.Fatalf("store read: found=%v err=%v", found, err)
	}
	if len(saved) != 1 || saved[0].Name != "ぬいぐるみ" {
		t.Errorf("persisted: %+v", saved)
	}
}

func TestService_AddAssignsUniqueIDs(t *testing.T) {
	svc, _ := newTestService(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := svc.Add(AddRequest{Name: fmt.Sprintf("p%d", i), Stock: 1})
		if err != nil {
			t.Fatal(err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestService_Update_Partial(t *testing.T) {
	svc, _ := newTestService(t)
	p, _ := svc.Add(AddRequest{Name: "before", ImageURL: "img", Stock: 3, Description: "desc"})

	name := "after"
	if err := svc.Update(UpdateRequest{ID: p.ID, Name: &name}); err != nil {
		t.Fatal(err)
	}

	got := svc.Prizes()[0]
	if got.Name != "after" {
		t.Errorf("name: %q", got.Name)
	}
	// Unset fields keep their values.
	if got.ImageURL != "img" || got.Stock != 3 || got.Description != "desc" {
		t.Errorf("unset fields changed: %+v", got)
	}
	if got.ID != p.ID || got.CreatedAt != p.CreatedAt {
		t.Errorf("immutable fields changed: %+v", got)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	name := "x"
	if err := svc.Update(UpdateRequest{ID: "missing", Name: &name}); !errors.Is(err, ErrPrizeNotFound) {
		t.Errorf("got %v, want ErrPrizeNotFound", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc, store := newTestService(t)
	p1, _ := svc.Add(AddRequest{Name: "A", Stock: 1})
	p2, _ := svc.Add(AddRequest{Name: "B", Stock: 1})

	if err := svc.Delete(p1.ID); err != nil {
		t.Fatal(err)
	}
	prizes := svc.Prizes()
	if len(prizes) != 1 || prizes[0].ID != p2.ID {
		t.Errorf("collection: %+v", prizes)
	}
	if err := svc.Delete(p1.ID); !errors.Is(err, ErrPrizeNotFound) {
		t.Errorf("second delete: got %v", err)
	}

	var saved []Prize
	if found, _ := store.Get("prizes", &saved); !found || len(saved) != 1 {
		t.Errorf("persisted: found=%v %+v", found, saved)
	}
}

func TestService_DecrementStock_Floor(t *testing.T) {
	svc, _ := newTestService(t)
	p, _ := svc.Add(AddRequest{Name: "A", Stock: 1})

	// Repeated decrements converge to 0 and stay there.
	for i := 0; i < 5; i++ {
		if err := svc.DecrementStock(p.ID); err != nil {
			t.Fatal(err)
		}
		if stock := svc.Prizes()[0].Stock; stock < 0 {
			t.Fatalf("stock went negative: %d", stock)
		}
	}
	if stock := svc.Prizes()[0].Stock; stock != 0 {
		t.Errorf("stock: %d, want 0", stock)
	}

	if err := svc.DecrementStock("missing"); !errors.Is(err, ErrPrizeNotFound) {
		t.Errorf("got %v, want ErrPrizeNotFound", err)
	}
}

func TestService_Draw_EmptyPool(t *testing.T) {
	svc, _ := newTestService(t)
	if p := svc.Draw(); p != nil {
		t.Errorf("empty collection: got %+v", p)
	}
	svc.Add(AddRequest{Name: "A", Stock: 0})
	if p := svc.Draw(); p != nil {
		t.Errorf("all out of stock: got %+v", p)
	}
}

func TestService_Draw_SkipsOutOfStock(t *testing.T) {
	svc, _ := newTestService(t)
	svc = svc.WithRand(rand.New(rand.NewSource(1)))
	svc.Add(AddRequest{Name: "empty", Stock: 0})
	winner, _ := svc.Add(AddRequest{Name: "stocked", Stock: 4})

	for i := 0; i < 50; i++ {
		p := svc.Draw()
		if p == nil || p.ID != winner.ID {
			t.Fatalf("draw %d: got %+v", i, p)
		}
	}
}

func TestService_Draw_UniformOverAvailable(t *testing.T) {
	// The draw is uniform over in-stock prizes, NOT weighted by stock:
	// wildly different stocks must still come out ~equally often.
	svc, _ := newTestService(t)
	svc = svc.WithRand(rand.New(rand.NewSource(42)))
	a, _ := svc.Add(AddRequest{Name: "A", Stock: 1000})
	b, _ := svc.Add(AddRequest{Name: "B", Stock: 10})
	c, _ := svc.Add(AddRequest{Name: "C", Stock: 1})

	const rounds = 30_000
	count := map[string]int{}
	for i := 0; i < rounds; i++ {
		p := svc.Draw()
		if p == nil {
			t.Fatal("draw returned nil")
		}
		count[p.ID]++
	}
	for _, id := range []string{a.ID, b.ID, c.ID} {
		got := float64(count[id]) / rounds
		if got < 0.31 || got > 0.36 {
			t.Errorf("prize %s: proportion %.4f want ~0.333", id, got)
		}
	}
}

func TestService_DrawDecrementRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	added, _ := svc.Add(AddRequest{Name: "last one", Stock: 1})

	p := svc.Draw()
	if p == nil || p.ID != added.ID {
		t.Fatalf("draw: %+v", p)
	}
	if err := svc.DecrementStock(p.ID); err != nil {
		t.Fatal(err)
	}
	if stock := svc.Prizes()[0].Stock; stock != 0 {
		t.Fatalf("stock: %d", stock)
	}
	if p := svc.Draw(); p != nil {
		t.Errorf("drained pool still draws: %+v", p)
	}
}

func TestService_Load(t *testing.T) {
	store := storage.NewFileStore(t.TempDir(), zerolog.Nop())
	first := NewService(store, zerolog.Nop())
	first.Add(AddRequest{Name: "A", Stock: 2})
	first.Add(AddRequest{Name: "B", Stock: 0})

	second := NewService(store, zerolog.Nop())
	second.Load()
	prizes := second.Prizes()
	if len(prizes) != 2 || prizes[0].Name != "A" || prizes[1].Name != "B" {
		t.Errorf("loaded: %+v", prizes)
	}
}

// failStore rejects every write.
type failStore struct{}

func (failStore) Get(string, any) (bool, error) { return false, nil }
func (failStore) Set(string, any) error         { return errors.New("disk full") }
func (failStore) Remove(string) error           { return nil }
func (failStore) Clear() error                  { return nil }

func TestService_PersistFailureRetainsMemory(t *testing.T) {
	svc := NewService(failStore{}, zerolog.Nop())

	p, err := svc.Add(AddRequest{Name: "A", Stock: 1})
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want StorageError", err)
	}
	// The write failed but the in-memory collection is still the session's
	// source of truth.
	if prizes := svc.Prizes(); len(prizes) != 1 || prizes[0].ID != p.ID {
		t.Errorf("collection: %+v", prizes)
	}
}
