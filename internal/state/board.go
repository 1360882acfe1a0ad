package state

// Board is the ordered set of finished curves. The order is the paint
// order; it carries no other meaning.
type Board struct {
	curves []*Curve
	byID   map[string]*Curve
}

func NewBoard() *Board {
	return &Board{byID: make(map[string]*Curve)}
}

// Add appends c on top of the existing curves.
func (b *Board) Add(c *Curve) {
	if _, exists := b.byID[c.ID]; exists {
		return
	}
	b.curves = append(b.curves, c)
	b.byID[c.ID] = c
}

// Curves returns the curves in paint order. The slice is a copy.
func (b *Board) Curves() []*Curve {
	out := make([]*Curve, len(b.curves))
	copy(out, b.curves)
	return out
}

func (b *Board) Len() int {
	return len(b.curves)
}

// Find returns the curve with the given id.
func (b *Board) Find(id string) (*Curve, bool) {
	c, ok := b.byID[id]
	return c, ok
}

// First returns the first curve, in paint order, for which hit is true.
func (b *Board) First(hit func(*Curve) bool) (*Curve, bool) {
	for _, c := range b.curves {
		if hit(c) {
			return c, true
		}
	}
	return nil, false
}

// Filter returns every curve for which hit is true, in paint order.
func (b *Board) Filter(hit func(*Curve) bool) []*Curve {
	var out []*Curve
	for _, c := range b.curves {
		if hit(c) {
			out = append(out, c)
		}
	}
	return out
}

// Remove drops all of the given curves at once and returns how many were
// present.
func (b *Board) Remove(curves []*Curve) int {
	drop := make(map[*Curve]bool, len(curves))
	for _, c := range curves {
		drop[c] = true
	}
	kept := b.curves[:0]
	n := 0
	for _, c := range b.curves {
		if drop[c] {
			delete(b.byID, c.ID)
			n++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(b.curves); i++ {
		b.curves[i] = nil
	}
	b.curves = kept
	return n
}

// Uses reports whether any curve refers to id.
func (b *Board) Uses(id PointID) bool {
	for _, c := range b.curves {
		for _, p := range c.Defining() {
			if p == id {
				return true
			}
		}
	}
	return false
}

func (b *Board) Clear() {
	b.curves = nil
	b.byID = make(map[string]*Curve)
}
