package engine

import "testing"

func faceUpCard(name string) *Card {
	c := NewCard(id(name))
	c.FaceUp = true
	return c
}

func stackOf(kind StackKind, names ...string) *Stack {
	s := NewStack(kind, Point{X: 20, Y: 110})
	for _, n := range names {
		s.Add(faceUpCard(n))
	}
	return s
}

// TestFoundationCanAccept checks the foundation rule against every card on
// an empty and a non-empty foundation.
func TestFoundationCanAccept(t *testing.T) {
	empty := stackOf(KindFoundation)
	built := stackOf(KindFoundation, "AH", "2H", "3H")
	for _, c := range NewDeck() {
		wantEmpty := c.Rank() == RankAce
		if got := empty.CanAccept(c, 1); got != wantEmpty {
			t.Errorf("empty foundation CanAccept(%s) = %v, want %v", c.ID, got, wantEmpty)
		}
		wantBuilt := c.ID == id("4H")
		if got := built.CanAccept(c, 1); got != wantBuilt {
			t.Errorf("foundation on 3H CanAccept(%s) = %v, want %v", c.ID, got, wantBuilt)
		}
		if empty.CanAccept(c, 2) || built.CanAccept(c, 2) {
			t.Errorf("foundation accepted %s with amount 2", c.ID)
		}
	}
}

// TestTableauCanAccept checks the tableau rule against every card and
// several run lengths.
func TestTableauCanAccept(t *testing.T) {
	empty := stackOf(KindTableau)
	built := stackOf(KindTableau, "8S")
	for _, c := range NewDeck() {
		for n := 1; n <= 4; n++ {
			wantEmpty := c.Rank() == RankKing
			if got := empty.CanAccept(c, n); got != wantEmpty {
				t.Errorf("empty tableau CanAccept(%s, %d) = %v, want %v", c.ID, n, got, wantEmpty)
			}
			wantBuilt := c.ID == id("7H") || c.ID == id("7D")
			if got := built.CanAccept(c, n); got != wantBuilt {
				t.Errorf("tableau on 8S CanAccept(%s, %d) = %v, want %v", c.ID, n, got, wantBuilt)
			}
		}
	}
}

func TestStockWasteDragNeverAccept(t *testing.T) {
	for _, kind := range []StackKind{KindStock, KindWaste, KindDrag} {
		s := NewStack(kind, Point{})
		for _, c := range NewDeck() {
			if s.CanAccept(c, 1) {
				t.Fatalf("%s stack accepted %s", kind, c.ID)
			}
		}
	}
}

// TestTakePreservesOrder verifies Take returns the top run bottom first.
func TestTakePreservesOrder(t *testing.T) {
	s := stackOf(KindTableau, "KS", "QH", "JC", "TD")
	got := s.Take(3)
	want := ids("QH", "JC", "TD")
	for i, c := range got {
		if c.ID != want[i] {
			t.Errorf("Take(3)[%d] = %s, want %s", i, c.ID, want[i])
		}
	}
	if s.Size() != 1 || s.Top().ID != id("KS") {
		t.Errorf("remaining stack = %d cards, top %v", s.Size(), s.Top())
	}
}

func TestTakeUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Take past the bottom did not panic")
		}
	}()
	stackOf(KindWaste, "AS").Take(2)
}

func TestTopBottomEmpty(t *testing.T) {
	s := NewStack(KindStock, Point{})
	if s.Top() != nil || s.Bottom() != nil || !s.IsEmpty() {
		t.Error("empty stack should report no top, no bottom and IsEmpty")
	}
}

// TestTableauLayout verifies face-down cards overlap more than face-up
// ones.
func TestTableauLayout(t *testing.T) {
	s := NewStack(KindTableau, Point{X: 20, Y: 110})
	s.Add(NewCard(id("2C")))
	s.Add(NewCard(id("9D")))
	s.Add(faceUpCard("KS"))
	s.Add(faceUpCard("QH"))
	want := []float64{110, 120, 130, 150}
	for i, p := range s.Layout() {
		if p.X != 20 || p.Y != want[i] {
			t.Errorf("Layout()[%d] = %v, want (20, %v)", i, p, want[i])
		}
		if s.At(i).Pos != p {
			t.Errorf("card %d Pos = %v, Add should snap to %v", i, s.At(i).Pos, p)
		}
	}
}

// TestWasteLayout verifies only the last three waste cards are fanned.
func TestWasteLayout(t *testing.T) {
	s := NewStack(KindWaste, Point{X: 80, Y: 20})
	for _, n := range []string{"AS", "2S", "3S", "4S", "5S"} {
		s.Add(faceUpCard(n))
	}
	want := []float64{80, 80, 80, 95, 110}
	for i, p := range s.Layout() {
		if p.X != want[i] || p.Y != 20 {
			t.Errorf("Layout()[%d] = %v, want (%v, 20)", i, p, want[i])
		}
	}

	short := NewStack(KindWaste, Point{X: 80, Y: 20})
	short.Add(faceUpCard("AS"))
	short.Add(faceUpCard("2S"))
	if got := short.Layout(); got[0].X != 80 || got[1].X != 95 {
		t.Errorf("two-card waste layout = %v", got)
	}
}

func TestSquaredLayout(t *testing.T) {
	for _, kind := range []StackKind{KindFoundation, KindStock} {
		s := NewStack(kind, Point{X: 200, Y: 20})
		s.Add(faceUpCard("AD"))
		s.Add(faceUpCard("2D"))
		for i, p := range s.Layout() {
			if p != s.Origin {
				t.Errorf("%s Layout()[%d] = %v, want origin", kind, i, p)
			}
		}
	}
}

// TestTableauDragCount exercises hits on closed cards, on the face-up run
// and off the stack.
func TestTableauDragCount(t *testing.T) {
	s := NewStack(KindTableau, Point{X: 20, Y: 110})
	s.Add(NewCard(id("2C")))
	s.Add(NewCard(id("9D")))
	s.Add(faceUpCard("KS"))
	s.Add(faceUpCard("QH"))

	cases := []struct {
		at   Point
		want int
	}{
		{Point{X: 30, Y: 115}, 0}, // first closed card
		{Point{X: 30, Y: 125}, 0}, // second closed card
		{Point{X: 30, Y: 135}, 2}, // KS, under QH
		{Point{X: 30, Y: 160}, 1}, // QH
		{Point{X: 30, Y: 219}, 1}, // bottom edge of QH
		{Point{X: 30, Y: 221}, 0}, // below the stack
		{Point{X: 75, Y: 160}, 0}, // right of the stack
	}
	for _, tc := range cases {
		if got := s.DragCountAt(tc.at); got != tc.want {
			t.Errorf("DragCountAt(%v) = %d, want %d", tc.at, got, tc.want)
		}
	}
}

func TestFoundationDragCount(t *testing.T) {
	s := NewStack(KindFoundation, Point{X: 200, Y: 20})
	if s.DragCountAt(Point{X: 210, Y: 30}) != 0 {
		t.Error("empty foundation should not be draggable")
	}
	s.Add(faceUpCard("AD"))
	s.Add(faceUpCard("2D"))
	if got := s.DragCountAt(Point{X: 210, Y: 30}); got != 1 {
		t.Errorf("DragCountAt on foundation = %d, want 1", got)
	}
}

func TestStockWasteNotDraggable(t *testing.T) {
	for _, kind := range []StackKind{KindStock, KindWaste} {
		s := NewStack(kind, Point{X: 20, Y: 20})
		s.Add(faceUpCard("AD"))
		if got := s.DragCountAt(Point{X: 30, Y: 30}); got != 0 {
			t.Errorf("%s DragCountAt = %d, want 0", kind, got)
		}
	}
}

func TestBoundingRegion(t *testing.T) {
	s := NewStack(KindTableau, Point{X: 20, Y: 110})
	if r := s.BoundingRegion(); r != CardRect(s.Origin) {
		t.Errorf("empty region = %v, want one card slot", r)
	}
	s.Add(faceUpCard("KS"))
	s.Add(faceUpCard("QH"))
	want := Rect{Min: Point{X: 20, Y: 110}, Max: Point{X: 70, Y: 200}}
	if r := s.BoundingRegion(); r != want {
		t.Errorf("region = %v, want %v", r, want)
	}
}

func TestRectIntersects(t *testing.T) {
	a := CardRect(Point{X: 20, Y: 110})
	cases := []struct {
		at   Point
		want bool
	}{
		{Point{X: 69, Y: 179}, true},
		{Point{X: 70, Y: 110}, false}, // touching edges do not overlap
		{Point{X: 20, Y: 180}, false},
		{Point{X: -29, Y: 41}, true},
	}
	for _, tc := range cases {
		if got := a.Intersects(CardRect(tc.at)); got != tc.want {
			t.Errorf("Intersects(card at %v) = %v, want %v", tc.at, got, tc.want)
		}
	}
}
