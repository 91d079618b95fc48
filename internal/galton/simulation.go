package galton

// Landing records a ball coming to rest this frame.
type Landing struct {
	BallID int
	Lane   int
	Count  int // lane count after this landing
}

// Frame summarises one call to Step.
type Frame struct {
	Number  int
	Spawned bool
	Landed  []Landing
}

// Simulation owns all mutable board state: the active balls and the
// histogram. It is driven one frame at a time by the host loop and is not
// safe for concurrent use.
type Simulation struct {
	geo      Geometry
	maxBalls int
	chooser  Chooser

	frame   int
	spawned int
	active  []*Ball
	landed  []*Ball // balls that landed during the last Step
	hist    *Histogram
}

func NewSimulation(geo Geometry, maxBalls int, chooser Chooser) *Simulation {
	return &Simulation{
		geo:      geo,
		maxBalls: maxBalls,
		chooser:  chooser,
		hist:     NewHistogram(geo.LaneCount()),
	}
}

func (s *Simulation) Geometry() Geometry { return s.geo }
func (s *Simulation) Histogram() *Histogram { return s.hist }
func (s *Simulation) FrameNumber() int { return s.frame }
func (s *Simulation) Spawned() int { return s.spawned }
func (s *Simulation) MaxBalls() int { return s.maxBalls }
func (s *Simulation) ActiveCount() int { return len(s.active) }
func (s *Simulation) SpawnCutoff() int { return 2 * s.maxBalls }
func (s *Simulation) Active() []*Ball { return s.active }
func (s *Simulation) LandedLastFrame() []*Ball { return s.landed }

// Spawning reports whether the next frame may still add a ball.
func (s *Simulation) Spawning() bool {
	return s.frame+1 < s.SpawnCutoff()
}

// Done is true once spawning has stopped and every ball has landed.
func (s *Simulation) Done() bool {
	return !s.Spawning() && len(s.active) == 0
}

// Visible returns the balls to draw for the current frame: the active set
// followed by those that landed during the last step, all in spawn order
// within each group.
func (s *Simulation) Visible() []*Ball {
	out := make([]*Ball, 0, len(s.active)+len(s.landed))
	out = append(out, s.active...)
	return append(out, s.landed...)
}

// Step runs one frame: spawn, advance every active ball, then drop the ones
// that landed. Balls are never removed while the active slice is being
// walked.
func (s *Simulation) Step() Frame {
	s.frame++
	f := Frame{Number: s.frame}

	if s.frame < s.SpawnCutoff() && s.frame%2 == 0 {
		s.active = append(s.active, newBall(s.spawned, s.geo))
		s.spawned++
		f.Spawned = true
	}

	var dead map[*Ball]struct{}
	s.landed = s.landed[:0]
	for _, b := range s.active {
		if !b.step(s.geo, s.hist, s.chooser) {
			continue
		}
		if dead == nil {
			dead = make(map[*Ball]struct{})
		}
		dead[b] = struct{}{}
		s.landed = append(s.landed, b)
		f.Landed = append(f.Landed, Landing{BallID: b.ID, Lane: b.Lane, Count: s.hist.Count(b.Lane)})
	}

	if len(dead) > 0 {
		kept := s.active[:0]
		for _, b := range s.active {
			if _, ok := dead[b]; !ok {
				kept = append(kept, b)
			}
		}
		for i := len(kept); i < len(s.active); i++ {
			s.active[i] = nil
		}
		s.active = kept
	}
	return f
}

// Run steps until the simulation is done or maxFrames frames have run
// (maxFrames <= 0 means no limit) and returns the number of frames stepped.
func (s *Simulation) Run(maxFrames int) int {
	n := 0
	for !s.Done() {
		if maxFrames > 0 && n >= maxFrames {
			break
		}
		s.Step()
		n++
	}
	return n
}
