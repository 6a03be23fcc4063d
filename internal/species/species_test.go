package species

import "testing"

func TestTargetCount(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{7, 7},
		{99, 99},
		{100, 100},
		{250, 100},
	}

	for _, tt := range tests {
		if got := TargetCount(tt.total); got != tt.want {
			t.Errorf("TargetCount(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := Name(SeaPrefix, 1); got != "abyss-unknown-001" {
		t.Errorf("Name = %q", got)
	}
	if got := Name(SkyPrefix, 42); got != "sky-unknown-042" {
		t.Errorf("Name = %q", got)
	}
	if got := Name(SeaPrefix, 100); got != "abyss-unknown-100" {
		t.Errorf("Name = %q", got)
	}
}

func TestExtend(t *testing.T) {
	list := Extend(nil, SeaPrefix, 3)
	want := []string{"abyss-unknown-001", "abyss-unknown-002", "abyss-unknown-003"}
	if len(list) != len(want) {
		t.Fatalf("got %d entries, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, list[i], want[i])
		}
	}
}

func TestExtendIsAppendOnly(t *testing.T) {
	original := []string{"abyss-unknown-001", "abyss-unknown-002"}
	extended := Extend(original, SeaPrefix, 4)

	if len(extended) != 4 {
		t.Fatalf("got %d entries, want 4", len(extended))
	}
	for i, name := range original {
		if extended[i] != name {
			t.Errorf("existing entry %d changed: %q", i, extended[i])
		}
	}
	if extended[3] != "abyss-unknown-004" {
		t.Errorf("new entry = %q", extended[3])
	}
}

func TestExtendNeverShrinks(t *testing.T) {
	list := []string{"abyss-unknown-001", "abyss-unknown-002", "abyss-unknown-003"}
	got := Extend(list, SeaPrefix, 1)
	if len(got) != 3 {
		t.Fatalf("list was truncated to %d entries", len(got))
	}
}
