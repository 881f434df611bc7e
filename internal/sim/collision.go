package sim

// OutOfBounds reports whether the avatar touches the ceiling or the floor.
// Contact counts; the avatar must stay strictly inside the playfield.
func OutOfBounds(a *Avatar) bool {
	return a.Y <= 0 || a.Y+a.Height >= a.floorY
}

// Collides reports whether the avatar hits the bounds or any pipe segment.
func Collides(a *Avatar, s *Stream) bool {
	if OutOfBounds(a) {
		return true
	}

	box := a.Rect()
	for _, o := range s.slots {
		if box.Intersects(s.TopRect(o)) {
			return true
		}
		if !o.Single && box.Intersects(s.BottomRect(o)) {
			return true
		}
	}
	return false
}
