package engine

// History is the undo/redo ledger. Past holds applied moves oldest first;
// Future holds undone moves, the next redo last. Future is emptied
// whenever a new move is committed.
type History struct {
	past   []Move
	future []Move
}

// Commit applies m, records it and drops any redoable moves.
func (h *History) Commit(m Move) Animation {
	anim := m.Apply()
	h.Record(m)
	return anim
}

// Record pushes a move that has already been applied.
func (h *History) Record(m Move) {
	h.past = append(h.past, m)
	clear(h.future)
	h.future = h.future[:0]
}

// Undo reverts the newest move. It returns nil when there is nothing to
// undo.
func (h *History) Undo() Animation {
	if len(h.past) == 0 {
		return nil
	}
	m := h.past[len(h.past)-1]
	h.past[len(h.past)-1] = nil
	h.past = h.past[:len(h.past)-1]
	anim := m.Revert()
	h.future = append(h.future, m)
	return anim
}

// Redo re-applies the most recently undone move. It returns nil when there
// is nothing to redo.
func (h *History) Redo() Animation {
	if len(h.future) == 0 {
		return nil
	}
	m := h.future[len(h.future)-1]
	h.future[len(h.future)-1] = nil
	h.future = h.future[:len(h.future)-1]
	anim := m.Apply()
	h.past = append(h.past, m)
	return anim
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Past returns a copy of the applied moves, oldest first.
func (h *History) Past() []Move { return append([]Move(nil), h.past...) }

// Future returns a copy of the undone moves, next redo last.
func (h *History) Future() []Move { return append([]Move(nil), h.future...) }

// Clear forgets every move.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}
