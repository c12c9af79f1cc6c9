package textflowtest

// Box is an inline widget of constant size.
type Box struct {
	W, H int
}

func (b Box) Size(int) (int, int) { return b.W, b.H }

// Seesaw is an inline widget whose height collapses once the available
// width drops below Threshold, and whose calls are counted. A document
// with a scroll bar and a Seesaw can flip between two layouts forever.
type Seesaw struct {
	W         int
	Threshold int
	Tall      int
	Short     int
	Calls     int
}

func (s *Seesaw) Size(maxWidth int) (int, int) {
	s.Calls++
	if maxWidth >= s.Threshold {
		return s.W, s.Tall
	}
	return s.W, s.Short
}
