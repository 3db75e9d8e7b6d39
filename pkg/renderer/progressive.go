package renderer

// Progressive renders a frame a few scanlines at a time, wrapping back to
// the top when the last row is done. It drives event-loop front ends that
// must return to the caller between rows.
type Progressive struct {
	rt     *Raytracer
	next   int
	frames int
	frame  RenderStats
}

// NewProgressive starts at the first scanline of the first frame
func NewProgressive(rt *Raytracer) *Progressive {
	width, height := rt.Size()
	return &Progressive{
		rt:    rt,
		frame: RenderStats{Width: width, Height: height, Workers: 1},
	}
}

// Step renders up to n scanlines. It stops early and reports true when a
// frame completes; an active camera tween is advanced at that point.
func (p *Progressive) Step(n int) (RenderStats, bool, error) {
	_, height := p.rt.Size()
	for i := 0; i < n; i++ {
		line, err := p.rt.RenderScanline(p.next)
		if err != nil {
			return p.frame, false, err
		}
		p.frame.add(line)
		p.frame.Duration += line.Duration
		p.next++

		if p.next >= height {
			done := p.frame
			p.frames++
			p.Restart()
			if p.rt.IsTweening() {
				p.rt.AdvanceTween()
			}
			return done, true, nil
		}
	}
	return p.frame, false, nil
}

// Restart discards the partial frame and resumes from the top row
func (p *Progressive) Restart() {
	p.next = 0
	p.frame = RenderStats{Width: p.frame.Width, Height: p.frame.Height, Workers: 1}
}

// NextScanline returns the row the next Step call renders first
func (p *Progressive) NextScanline() int {
	return p.next
}

// Frames returns the number of completed frames
func (p *Progressive) Frames() int {
	return p.frames
}
