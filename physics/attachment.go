// Package physics describes joints and physics materials as plain data. A
// physics integration layer turns these descriptors into real constraints;
// nothing here touches simulation state.
package physics

import (
	"fmt"

	"github.com/osuushi/spritemesh/geom"
	"github.com/pkg/errors"
)

var ErrNoRigidbody = errors.New("connected body has no rigidbody")

type JointKind int

const (
	HingeJoint JointKind = iota
	FixedJoint
)

func (k JointKind) String() string {
	switch k {
	case HingeJoint:
		return "hinge"
	case FixedJoint:
		return "fixed"
	}
	return fmt.Sprintf("JointKind(%d)", int(k))
}

type Motor struct {
	Speed     float64 // degrees per second
	MaxTorque float64
}

// Anything with a stable anchor point. Every shape satisfies this.
type Anchored interface {
	Center() geom.Point
}

// A body that can be the far end of a joint.
type Body interface {
	Anchored
	// Rigidbody returns the reference the physics layer knows the body by, or
	// false if it has none.
	Rigidbody() (string, bool)
}

type Attachment struct {
	Kind   JointKind
	Anchor geom.Point
	// Nil unless the joint is driven.
	Motor *Motor
	// Empty means the joint is pinned to the world.
	ConnectedBody   string
	ConnectedAnchor geom.Point
}

func (a Attachment) UseMotor() bool {
	return a.Motor != nil
}

func (a Attachment) String() string {
	to := "world"
	if a.ConnectedBody != "" {
		to = a.ConnectedBody
	}
	return fmt.Sprintf("%s joint at (%g, %g) to %s", a.Kind, a.Anchor.X, a.Anchor.Y, to)
}

type Option func(*Attachment)

func WithMotor(m Motor) Option {
	return func(a *Attachment) {
		a.Motor = &m
	}
}

// Connect the joint to another body instead of the world.
func WithConnectedBody(b Body) Option {
	return func(a *Attachment) {
		if ref, ok := b.Rigidbody(); ok {
			a.ConnectedBody = ref
			a.ConnectedAnchor = b.Center()
		}
	}
}

// A hinge at the center of s, pinned to the world unless an option says
// otherwise.
func Hinge(s Anchored, opts ...Option) Attachment {
	a := Attachment{Kind: HingeJoint, Anchor: s.Center()}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Fix s to the world at its center.
func Fixed(s Anchored) Attachment {
	return Attachment{Kind: FixedJoint, Anchor: s.Center()}
}

// Fix a to b, anchored at both centers. Fails if b has no rigidbody to
// connect to.
func Join(a Anchored, b Body) (Attachment, error) {
	ref, ok := b.Rigidbody()
	if !ok {
		return Attachment{}, ErrNoRigidbody
	}
	return Attachment{
		Kind:            FixedJoint,
		Anchor:          a.Center(),
		ConnectedBody:   ref,
		ConnectedAnchor: b.Center(),
	}, nil
}
