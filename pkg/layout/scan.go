package layout

// step is one breakpoint of the height profile: from x onward (until the next
// step) the lowest free row is height.
type step struct {
	x, height int
}

// scan is a run-length encoded height profile over columns 0..+inf. Steps are
// ordered by strictly increasing x and the first step is always at x=0.
type scan struct {
	steps []step
}

func newScan() *scan {
	return &scan{steps: []step{{x: 0, height: 0}}}
}

// index returns the position of the step covering column x.
func (s *scan) index(x int) int {
	i := 0
	for i+1 < len(s.steps) && s.steps[i+1].x <= x {
		i++
	}
	return i
}

func (s *scan) heightAt(x int) int {
	return s.steps[s.index(x)].height
}

// add sets the profile to y over [x, x+w). Columns right of the span keep
// their previous height; columns left of x are untouched.
func (s *scan) add(x, y, w int) {
	if x < 0 {
		w += x
		x = 0
	}
	if w <= 0 {
		return
	}
	end := x + w
	tail := s.heightAt(end)

	out := make([]step, 0, len(s.steps)+2)
	for _, st := range s.steps {
		if st.x < x {
			out = append(out, st)
		}
	}
	out = append(out, step{x: x, height: y}, step{x: end, height: tail})
	for _, st := range s.steps {
		if st.x > end {
			out = append(out, st)
		}
	}

	s.steps = out[:1]
	for _, st := range out[1:] {
		if st.height != s.steps[len(s.steps)-1].height {
			s.steps = append(s.steps, st)
		}
	}
}

// lowestFree returns the highest profile value over [x, x+w): the first row
// at which a shape of width w placed at x overlaps nothing already added.
func (s *scan) lowestFree(x, w int) int {
	if x < 0 {
		w += x
		x = 0
	}
	w = max(w, 1)
	h := 0
	for i := s.index(x); i < len(s.steps) && s.steps[i].x < x+w; i++ {
		h = max(h, s.steps[i].height)
	}
	return h
}
