package highscore

import (
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "highscores.db"))
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadOnEmptyStore(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.Load(10)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Load = %d entries on empty store, want 0", len(entries))
	}
}

func TestAppendReturnsSortedList(t *testing.T) {
	s := openTestStore(t)

	scores := []int{120, 45, 301, 45, 88, 199, 0}
	var entries []Entry
	for i, sc := range scores {
		entries, _ = s.Append(Entry{
			Player:    "player",
			Score:     sc,
			CreatedAt: time.Date(2026, 3, 1, 12, i, 0, 0, time.UTC),
		})
	}

	if len(entries) != len(scores) {
		t.Fatalf("Append returned %d entries, want %d", len(entries), len(scores))
	}
	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	}) {
		t.Fatalf("entries not sorted by score descending: %+v", entries)
	}
	if entries[0].Score != 301 {
		t.Fatalf("best score = %d, want 301", entries[0].Score)
	}
}

func TestAppendedEntryComesBack(t *testing.T) {
	s := openTestStore(t)

	for _, sc := range []int{50, 250, 10} {
		if _, err := s.Append(Entry{Player: "seed", Score: sc, CreatedAt: time.Now()}); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	want := Entry{
		Player:    "newcomer",
		Score:     123,
		CreatedAt: time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
	}
	entries, err := s.Append(want)
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	found := false
	for _, e := range entries {
		if e.Player != want.Player {
			continue
		}
		found = true
		if e.Score != want.Score {
			t.Fatalf("entry score = %d, want %d", e.Score, want.Score)
		}
		if !e.CreatedAt.Equal(want.CreatedAt) {
			t.Fatalf("entry time = %v, want %v", e.CreatedAt, want.CreatedAt)
		}
		if e.ID == "" {
			t.Fatal("appended entry has no ID")
		}
	}
	if !found {
		t.Fatalf("appended entry missing from list: %+v", entries)
	}
}

func TestLoadHonorsLimit(t *testing.T) {
	s := openTestStore(t)

	for sc := 1; sc <= 15; sc++ {
		if _, err := s.Append(Entry{Player: "p", Score: sc * 10, CreatedAt: time.Now()}); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	top, err := s.Load(10)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(top) != 10 {
		t.Fatalf("Load(10) = %d entries, want 10", len(top))
	}
	if top[0].Score != 150 {
		t.Fatalf("Load(10)[0].Score = %d, want 150", top[0].Score)
	}

	all, err := s.Load(0)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("Load(0) = %d entries, want 15", len(all))
	}
}

func TestEntriesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	if _, err := s.Append(Entry{Player: "keeper", Score: 77, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer s.Close()

	entries, err := s.Load(0)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Player != "keeper" || entries[0].Score != 77 {
		t.Fatalf("unexpected entries after reopen: %+v", entries)
	}
}
