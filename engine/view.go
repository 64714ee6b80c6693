package engine

import "time"

// CardView is the visual state of one card for the renderer.
type CardView struct {
	ID      CardID
	FaceUp  bool
	Pos     Point
	ScaleX  float64
	Texture string
}

// StackView is the visual state of one stack, cards bottom to top.
type StackView struct {
	Ref    StackRef
	Region Rect
	Cards  []CardView
}

// View is a snapshot of everything a renderer needs for one frame.
type View struct {
	Stacks  []StackView // drawing order, the drag stack last
	State   State
	Elapsed time.Duration
	Moves   int
	CanUndo bool
	CanRedo bool
	Seed    uint64
}

// View captures the current visual state.
func (g *Game) View() View {
	v := View{
		State:   g.State(),
		Elapsed: g.elapsed,
		Moves:   g.moves,
		CanUndo: g.history.CanUndo(),
		CanRedo: g.history.CanRedo(),
		Seed:    g.seed,
	}
	for _, s := range g.Stacks() {
		ref, _ := g.RefOf(s)
		sv := StackView{Ref: ref, Region: s.BoundingRegion(), Cards: make([]CardView, len(s.cards))}
		for i, c := range s.cards {
			sv.Cards[i] = CardView{
				ID:      c.ID,
				FaceUp:  c.FaceUp,
				Pos:     c.Pos,
				ScaleX:  c.ScaleX,
				Texture: c.Texture(),
			}
		}
		v.Stacks = append(v.Stacks, sv)
	}
	return v
}
