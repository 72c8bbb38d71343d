package registry

import (
	"testing"
)

func TestByKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantTitle string
	}{
		{name: "first category", key: "basic", wantFound: true, wantTitle: "Basic Operations"},
		{name: "last category", key: "advanced", wantFound: true, wantTitle: "Advanced Examples"},
		{name: "unknown key", key: "nonsense", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := ByKey(tt.key)
			if ok != tt.wantFound {
				t.Fatalf("ByKey(%q) found = %v, want %v", tt.key, ok, tt.wantFound)
			}
			if tt.wantFound && def.Title != tt.wantTitle {
				t.Errorf("ByKey(%q) title = %q, want %q", tt.key, def.Title, tt.wantTitle)
			}
		})
	}
}

func TestByIndexClamping(t *testing.T) {
	last := Categories()[len(Categories())-1]

	tests := []struct {
		name        string
		index       int
		wantKey     string
		wantClamped bool
	}{
		{name: "first position", index: 1, wantKey: "basic", wantClamped: false},
		{name: "second position", index: 2, wantKey: "encryption", wantClamped: false},
		{name: "last position", index: len(Categories()), wantKey: last.Key, wantClamped: false},
		{name: "past the end", index: 99, wantKey: last.Key, wantClamped: true},
		{name: "just past the end", index: len(Categories()) + 1, wantKey: last.Key, wantClamped: true},
		{name: "zero", index: 0, wantKey: "basic", wantClamped: true},
		{name: "negative", index: -5, wantKey: "basic", wantClamped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, clamped := ByIndex(tt.index)
			if def.Key != tt.wantKey {
				t.Errorf("ByIndex(%d) key = %q, want %q", tt.index, def.Key, tt.wantKey)
			}
			if clamped != tt.wantClamped {
				t.Errorf("ByIndex(%d) clamped = %v, want %v", tt.index, clamped, tt.wantClamped)
			}
		})
	}
}

func TestKeysOrder(t *testing.T) {
	keys := Keys()
	want := []string{"basic", "encryption", "access-control", "relayer", "anti-patterns", "advanced"}

	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], key)
		}
	}
}

func TestCategoriesHaveExamples(t *testing.T) {
	for _, cat := range Categories() {
		if len(cat.Examples) == 0 {
			t.Errorf("Category %q has no examples", cat.Key)
		}
		if cat.Description == "" {
			t.Errorf("Category %q has no description", cat.Key)
		}
	}
}
