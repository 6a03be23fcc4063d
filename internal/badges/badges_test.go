package badges

import "testing"

func TestCatalogSortedAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	prev := 0
	for _, def := range Catalog {
		if seen[def.ID] {
			t.Fatalf("duplicate badge id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Threshold < prev {
			t.Fatalf("catalog out of threshold order at %q (%d after %d)", def.ID, def.Threshold, prev)
		}
		prev = def.Threshold
	}
}

func TestNewlyUnlocked(t *testing.T) {
	tests := []struct {
		name     string
		unlocked []string
		total    int
		want     []string
	}{
		{"zero total unlocks nothing", nil, 0, nil},
		{"first record unlocks the first badge", nil, 1, []string{"first-surrender"}},
		{"jump unlocks every reached badge in order", nil, 5, []string{"first-surrender", "warming-up", "hands-off"}},
		{"already unlocked ids are skipped", []string{"first-surrender"}, 3, []string{"warming-up"}},
		{"no change when everything reached is held", []string{"first-surrender", "warming-up", "hands-off"}, 5, nil},
		{"negative total unlocks nothing", nil, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewlyUnlocked(tt.unlocked, tt.total)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d badges, want %d", len(got), len(tt.want))
			}
			for i, def := range got {
				if def.ID != tt.want[i] {
					t.Errorf("badge %d = %q, want %q", i, def.ID, tt.want[i])
				}
			}
		})
	}
}

func TestNewlyUnlockedIsPure(t *testing.T) {
	ids := []string{"first-surrender"}
	NewlyUnlocked(ids, 100)
	if len(ids) != 1 || ids[0] != "first-surrender" {
		t.Fatalf("input slice was mutated: %v", ids)
	}
}

func TestUnlockedKeepsCatalogOrder(t *testing.T) {
	got := Unlocked([]string{"hands-off", "first-surrender", "not-a-badge"})
	if len(got) != 2 {
		t.Fatalf("got %d badges, want 2", len(got))
	}
	if got[0].ID != "first-surrender" || got[1].ID != "hands-off" {
		t.Fatalf("unexpected order: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestHiddenBadgeMasking(t *testing.T) {
	def, ok := ByID("night-shift")
	if !ok {
		t.Fatal("night-shift missing from catalog")
	}
	if !def.Hidden {
		t.Fatal("night-shift should be hidden")
	}

	if got := def.DisplayTitle(false); got != "???" {
		t.Errorf("locked hidden title = %q, want masked", got)
	}
	if got := def.DisplayDescription(false); got == def.Description {
		t.Error("locked hidden description should be masked")
	}
	if got := def.DisplayTitle(true); got != def.Title {
		t.Errorf("unlocked title = %q, want %q", got, def.Title)
	}
	if got := def.DisplayDescription(true); got != def.Description {
		t.Errorf("unlocked description = %q, want %q", got, def.Description)
	}
}

func TestVisibleBadgeNeverMasked(t *testing.T) {
	def, ok := ByID("first-surrender")
	if !ok {
		t.Fatal("first-surrender missing from catalog")
	}
	if got := def.DisplayTitle(false); got != def.Title {
		t.Errorf("visible badge title masked while locked: %q", got)
	}
}
