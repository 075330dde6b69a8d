// Package deck tracks per-card reveal state for the flashcard view.
package deck

// Deck records which card positions are currently revealed. Cards default
// to hidden; any subset may be revealed at once and positions are fully
// independent of each other.
type Deck struct {
	size     int
	revealed map[int]bool
}

// New creates a deck of the given size with every card hidden.
func New(size int) *Deck {
	return &Deck{
		size:     size,
		revealed: make(map[int]bool),
	}
}

// Size returns the number of cards in the deck.
func (d *Deck) Size() int { return d.size }

// Toggle flips the reveal bit for one position. Out-of-range positions are
// ignored. Toggling twice restores the original state.
func (d *Deck) Toggle(position int) {
	if position < 0 || position >= d.size {
		return
	}
	if d.revealed[position] {
		delete(d.revealed, position)
	} else {
		d.revealed[position] = true
	}
}

// Revealed reports whether the card at position is showing its definition.
func (d *Deck) Revealed(position int) bool {
	return d.revealed[position]
}

// RevealedCount returns how many cards are currently revealed.
func (d *Deck) RevealedCount() int {
	return len(d.revealed)
}

// Reset hides every card.
func (d *Deck) Reset() {
	d.revealed = make(map[int]bool)
}
