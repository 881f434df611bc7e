package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// ObstacleView is a renderable obstacle slot.
type ObstacleView struct {
	X      float64
	Width  float64
	Top    core.RectF
	Bottom core.RectF // Empty for single pipes
	Single bool
	Passed bool
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	State     State
	Score     int
	Skin      int
	Avatar    core.RectF
	Velocity  float64
	Frame     int
	Obstacles []ObstacleView
	Speed     float64
	Distance  float64
	Elapsed   float64

	WorldW int
	WorldH int
	FloorY int
}

// Snapshot copies the session state into dst, reusing its obstacle slice.
func (s *Session) Snapshot(dst *Snapshot) {
	dst.State = s.state
	dst.Score = s.score
	dst.Skin = s.skin
	dst.Avatar = s.avatar.Rect()
	dst.Velocity = s.avatar.Velocity
	dst.Frame = s.avatar.Frame
	dst.Speed = s.stream.Speed()
	dst.Distance = s.stream.Distance()
	dst.Elapsed = s.elapsed
	dst.WorldW = s.cfg.World.Width
	dst.WorldH = s.cfg.World.Height
	dst.FloorY = s.cfg.FloorY()

	dst.Obstacles = dst.Obstacles[:0]
	for _, o := range s.stream.slots {
		dst.Obstacles = append(dst.Obstacles, ObstacleView{
			X:      o.X,
			Width:  float64(s.stream.width),
			Top:    s.stream.TopRect(o),
			Bottom: s.stream.BottomRect(o),
			Single: o.Single,
			Passed: o.Passed,
		})
	}
}
