package cfb

import (
	"errors"
	"testing"
)

func TestCompareDirNames(t *testing.T) {
	cases := []struct {
		a, b string
		want int // sign only
	}{
		{"A", "AA", -1}, // shorter sorts first
		{"ZZ", "A", 1},  // even when lexicographically smaller
		{"b", "A", 1},   // equal length: upper-cased comparison
		{"A", "b", -1},
		{"abc", "ABC", 0}, // equal after upper-casing
		{"name", "name", 0},
	}
	for _, c := range cases {
		got := compareDirNames(c.a, c.b)
		switch {
		case c.want < 0 && got >= 0,
			c.want > 0 && got <= 0,
			c.want == 0 && got != 0:
			t.Errorf("compareDirNames(%q, %q) = %d, want sign %d", c.a, c.b, got, c.want)
		}
	}
}

func TestBuildTreeSiblingOrder(t *testing.T) {
	entries := []Entry{
		{Name: "Root Entry", Kind: KindStorage, Children: []int{1, 2, 3}},
		{Name: "AA", Kind: KindStream},
		{Name: "b", Kind: KindStream},
		{Name: "A", Kind: KindStream},
	}
	e := newEncoder(entries, writeConfig{})
	if err := e.buildTree(0); err != nil {
		t.Fatal(err)
	}
	// Sorted order: "A", "b", "AA".
	if got := e.state[0].child; got != 3 {
		t.Fatalf("root child: got %d want 3", got)
	}
	if got := e.state[3].right; got != 2 {
		t.Fatalf("A.right: got %d want 2", got)
	}
	if got := e.state[2].right; got != 1 {
		t.Fatalf("b.right: got %d want 1", got)
	}
	if got := e.state[1].right; got != noStream {
		t.Fatalf("AA.right: got %#x want none", got)
	}
	for i := range e.state {
		if got := e.state[i].left; got != noStream {
			t.Errorf("entry %d left: got %#x want none", i, got)
		}
	}
}

func TestBuildTreeRecursesIntoStorages(t *testing.T) {
	entries := []Entry{
		{Name: "Root Entry", Kind: KindStorage, Children: []int{1}},
		{Name: "Inner", Kind: KindStorage, Children: []int{3, 2}},
		{Name: "Y", Kind: KindStream},
		{Name: "X", Kind: KindStream},
	}
	e := newEncoder(entries, writeConfig{})
	if err := e.buildTree(0); err != nil {
		t.Fatal(err)
	}
	if got := e.state[1].child; got != 3 {
		t.Fatalf("Inner child: got %d want 3", got)
	}
	if got := e.state[3].right; got != 2 {
		t.Fatalf("X.right: got %d want 2", got)
	}
}

func TestBuildTreeOnStream(t *testing.T) {
	entries := []Entry{
		{Name: "Root Entry", Kind: KindStorage, Children: []int{1}},
		{Name: "S", Kind: KindStream},
	}
	e := newEncoder(entries, writeConfig{})
	if err := e.buildTree(1); !errors.Is(err, ErrNotStorage) {
		t.Fatalf("expected ErrNotStorage, got %v", err)
	}
}

func TestBuildTreeTieIsStable(t *testing.T) {
	// "abc" and "ABC" compare equal; the original order survives.
	entries := []Entry{
		{Name: "Root Entry", Kind: KindStorage, Children: []int{1, 2}},
		{Name: "abc", Kind: KindStream},
		{Name: "ABC", Kind: KindStream},
	}
	e := newEncoder(entries, writeConfig{})
	if err := e.buildTree(0); err != nil {
		t.Fatal(err)
	}
	if got := e.state[0].child; got != 1 {
		t.Fatalf("root child: got %d want 1", got)
	}
	if got := e.state[1].right; got != 2 {
		t.Fatalf("abc.right: got %d want 2", got)
	}
}
