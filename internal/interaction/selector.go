package interaction

// Selector holds the active index shared by a looped carousel and the
// controls that drive it. Every producer writes the same value; the last
// write wins.
type Selector struct {
	n      int
	active int
}

// Move is a looped navigation command for the carousel.
// Steps is signed: negative moves backwards, zero means stay.
type Move struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Steps int `json:"steps"`
}

// NewSelector creates a selector over n slides starting at 0
func NewSelector(n int) *Selector {
	return &Selector{n: n}
}

// Len returns the number of slides
func (s *Selector) Len() int { return s.n }

// Active returns the selected index
func (s *Selector) Active() int { return s.active }

// IsActive reports whether i is the selected index
func (s *Selector) IsActive(i int) bool { return s.n > 0 && s.wrap(i) == s.active }

// Select sets the active index directly, as on a tab click
func (s *Selector) Select(i int) {
	if s.n == 0 {
		return
	}
	s.active = s.wrap(i)
}

// Hover selects i from a sidebar entry and returns the carousel move
// along the shortest looped path. Ties move forward.
func (s *Selector) Hover(i int) Move {
	if s.n == 0 {
		return Move{}
	}
	from, to := s.active, s.wrap(i)
	steps := s.wrap(to - from)
	if steps > s.n/2 {
		steps -= s.n
	}
	s.active = to
	return Move{From: from, To: to, Steps: steps}
}

// SlideChanged records the carousel's own real index after autoplay or swipe
func (s *Selector) SlideChanged(realIndex int) {
	s.Select(realIndex)
}

// Advance moves to the next slide, wrapping at the end
func (s *Selector) Advance() int {
	s.Select(s.active + 1)
	return s.active
}

func (s *Selector) wrap(i int) int {
	if s.n == 0 {
		return 0
	}
	i %= s.n
	if i < 0 {
		i += s.n
	}
	return i
}
