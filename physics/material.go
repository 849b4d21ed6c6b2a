package physics

import "github.com/pkg/errors"

// Surface response used by colliders.
type Material struct {
	Bounciness float64
	Friction   float64
}

func (m Material) Validate() error {
	if m.Bounciness < 0 || m.Bounciness > 1 {
		return errors.Errorf("bounciness must be within [0, 1], got %g", m.Bounciness)
	}
	if m.Friction < 0 {
		return errors.Errorf("friction must not be negative, got %g", m.Friction)
	}
	return nil
}
