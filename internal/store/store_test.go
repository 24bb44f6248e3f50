package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type rec struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	if err := s.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	return s
}

func TestBootstrapCreatesCollectionFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	for _, c := range AllCollections {
		b, err := os.ReadFile(filepath.Join(dir, string(c)+".json"))
		if err != nil {
			t.Fatalf("collection file %s: %v", c, err)
		}
		if strings.TrimSpace(string(b)) != "[]" {
			t.Fatalf("collection %s not bootstrapped empty: %q", c, b)
		}
	}
}

func TestReadMissingFileLeavesSliceEmpty(t *testing.T) {
	s := New(t.TempDir()) // sem Bootstrap
	var list []rec
	s.Read(Users, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestReadCorruptFileLeavesSliceEmpty(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	var list []rec
	s.Read(Users, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty list for corrupt file, got %v", list)
	}
}

func TestWriteReadRoundTripPreservesNonASCII(t *testing.T) {
	s := newTestStore(t)
	in := []rec{{ID: 1, Name: "Consulta agendada – João & Cia <테스트>"}}
	if err := s.Write(Notifications, in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var out []rec
	s.Read(Notifications, &out)
	if len(out) != 1 || out[0].Name != in[0].Name {
		t.Fatalf("round trip mismatch: %v", out)
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, "notifications.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "João") || !strings.Contains(string(raw), "&") {
		t.Fatalf("non-ASCII or & escaped on disk: %s", raw)
	}
	if !strings.Contains(string(raw), "    ") {
		t.Fatalf("file not pretty-printed: %s", raw)
	}
}

func TestUpdateSerializesConcurrentWriters(t *testing.T) {
	s := newTestStore(t)
	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			err := s.Update(Appointments, func(load func(interface{}), save func(interface{}) error) error {
				var list []rec
				load(&list)
				maxID := 0
				for _, r := range list {
					if r.ID > maxID {
						maxID = r.ID
					}
				}
				list = append(list, rec{ID: maxID + 1})
				return save(list)
			})
			if err != nil {
				t.Errorf("Update: %v", err)
			}
		}()
	}
	wg.Wait()
	var list []rec
	s.Read(Appointments, &list)
	if len(list) != n {
		t.Fatalf("lost updates: got %d records, want %d", len(list), n)
	}
	seen := map[int]bool{}
	for _, r := range list {
		if seen[r.ID] {
			t.Fatalf("duplicate id minted: %d", r.ID)
		}
		seen[r.ID] = true
	}
}
