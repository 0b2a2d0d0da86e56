package model

import (
	"reflect"
	"testing"
)

func TestImageListAddKeepsOrder(t *testing.T) {
	list := NewImageList()
	list.Add("/pics/a.png", "/pics/b.jpg")
	list.Add("/pics/c.webp")

	expected := []string{"/pics/a.png", "/pics/b.jpg", "/pics/c.webp"}
	if !reflect.DeepEqual(list.Paths(), expected) {
		t.Errorf("Paths() = %v, expected %v", list.Paths(), expected)
	}
}

func TestImageListRemoveKeepsRelativeOrder(t *testing.T) {
	list := NewImageList()
	list.Add("/a.png", "/b.png", "/c.png", "/d.png")

	if !list.RemoveAt(1) {
		t.Fatal("RemoveAt(1) should succeed")
	}

	if list.Len() != 3 {
		t.Fatalf("Expected 3 entries after removal, got %d", list.Len())
	}

	expected := []string{"/a.png", "/c.png", "/d.png"}
	if !reflect.DeepEqual(list.Paths(), expected) {
		t.Errorf("Paths() = %v, expected %v", list.Paths(), expected)
	}
}

func TestImageListRemoveMultiple(t *testing.T) {
	list := NewImageList()
	list.Add("/a.png", "/b.png", "/c.png", "/d.png", "/e.png")

	// Unsorted indices with a duplicate and an out-of-range value
	removed := list.Remove(3, 1, 1, 99)
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}

	expected := []string{"/a.png", "/c.png", "/e.png"}
	if !reflect.DeepEqual(list.Paths(), expected) {
		t.Errorf("Paths() = %v, expected %v", list.Paths(), expected)
	}
}

func TestImageListMovePreservesMembership(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		expected []string
	}{
		{"forward", 0, 2, []string{"/b.png", "/c.png", "/a.png", "/d.png"}},
		{"backward", 3, 0, []string{"/d.png", "/a.png", "/b.png", "/c.png"}},
		{"adjacent down", 1, 2, []string{"/a.png", "/c.png", "/b.png", "/d.png"}},
		{"same index", 2, 2, []string{"/a.png", "/b.png", "/c.png", "/d.png"}},
	}

	for _, test := range tests {
		list := NewImageList()
		list.Add("/a.png", "/b.png", "/c.png", "/d.png")

		if !list.Move(test.from, test.to) {
			t.Errorf("%s: Move(%d, %d) should succeed", test.name, test.from, test.to)
			continue
		}

		if !reflect.DeepEqual(list.Paths(), test.expected) {
			t.Errorf("%s: Paths() = %v, expected %v", test.name, list.Paths(), test.expected)
		}

		// No entries lost or duplicated
		seen := make(map[string]int)
		for _, p := range list.Paths() {
			seen[p]++
		}
		if len(seen) != 4 {
			t.Errorf("%s: expected 4 distinct entries, got %d", test.name, len(seen))
		}
		for p, count := range seen {
			if count != 1 {
				t.Errorf("%s: entry %s appears %d times", test.name, p, count)
			}
		}
	}
}

func TestImageListMoveOutOfRange(t *testing.T) {
	list := NewImageList()
	list.Add("/a.png", "/b.png")

	if list.Move(-1, 0) {
		t.Error("Move with negative from should fail")
	}
	if list.Move(0, 2) {
		t.Error("Move with out-of-range to should fail")
	}
	if list.Len() != 2 {
		t.Errorf("Failed moves must not change the list, got %d entries", list.Len())
	}
}

func TestImageListClear(t *testing.T) {
	list := NewImageList()
	list.Add("/a.png", "/b.png")
	list.Clear()

	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d entries", list.Len())
	}
}

func TestImageEntryDisplayName(t *testing.T) {
	tests := []struct {
		path     string
		name     string
		nameNoEx string
	}{
		{"/pics/holiday/beach.jpg", "beach.jpg", "beach"},
		{"portrait.png", "portrait.png", "portrait"},
		{"/pics/.hidden", ".hidden", ".hidden"},
	}

	for _, test := range tests {
		e := ImageEntry{Path: test.path}
		if e.DisplayName() != test.name {
			t.Errorf("DisplayName(%s) = %s, expected %s", test.path, e.DisplayName(), test.name)
		}
		if e.DisplayNameNoExt() != test.nameNoEx {
			t.Errorf("DisplayNameNoExt(%s) = %s, expected %s", test.path, e.DisplayNameNoExt(), test.nameNoEx)
		}
	}
}
