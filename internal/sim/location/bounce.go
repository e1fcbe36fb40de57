package location

// Bounce moves in a straight line and reflects off every edge of the field.
type Bounce struct {
	mover
}

// NewBounce creates a bouncing provider.
func NewBounce(m Motion) *Bounce {
	return &Bounce{mover: newMover(m)}
}

func (b *Bounce) Update(uint64) {
	b.advance()
	b.bounceHorizontal()
	b.bounceVertical()
}

var _ Provider = (*Bounce)(nil)
