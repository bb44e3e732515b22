package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/efreeman/hexfront/internal/bot"
)

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestSaveMatchRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	ctx := context.Background()
	results := []*bot.ArenaResult{
		{
			Name:      "m1",
			Winner:    "red",
			Turns:     17,
			Seed:      42,
			Units:     map[string]int{"red": 3, "blue": 0},
			Buildings: map[string]int{"red": 4, "blue": 1},
		},
		{
			Name:      "m2",
			Winner:    "",
			Turns:     200,
			Seed:      43,
			Units:     map[string]int{"red": 1, "blue": 1},
			Buildings: map[string]int{"red": 2, "blue": 2},
		},
	}
	for _, r := range results {
		if err := s.SaveMatch(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.Name, err)
		}
	}

	rows, err := s.db.Query("SELECT name, winner, turns, seed FROM matches ORDER BY id")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var name, winner string
		var turns int
		var seed int64
		if err := rows.Scan(&name, &winner, &turns, &seed); err != nil {
			t.Fatal(err)
		}
		want := results[i]
		if name != want.Name || winner != want.Winner || turns != want.Turns || seed != want.Seed {
			t.Errorf("row %d = (%s, %s, %d, %d), want %+v", i, name, winner, turns, seed, want)
		}
		i++
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	if i != len(results) {
		t.Errorf("rows = %d, want %d", i, len(results))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		if err := s.Close(); err != nil {
			t.Fatal(err)
		}
	}
}
