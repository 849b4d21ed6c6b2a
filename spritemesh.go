// Procedurally generated 2D sprite meshes.
//
// A Shape (circle, rectangle, regular polygon, star or free outline) is built
// into a Mesh: vertices in the XY plane, counterclockwise triangles, UVs
// normalized to the mesh's bounding box, and flat normals. A Sprite bundles a
// shape with the data-only descriptions of its collider, material, physics
// material and joints that a host engine needs to bring it to life.
//
// The geometry kernel underneath lives in the geom package and can be used on
// its own.
package spritemesh

import (
	"log/slog"
	"math/rand"

	"github.com/osuushi/spritemesh/geom"
	"github.com/osuushi/spritemesh/material"
	"github.com/osuushi/spritemesh/physics"
	"github.com/osuushi/spritemesh/shape"
	"github.com/pkg/errors"
)

type Point = geom.Point
type Point3 = geom.Point3
type UV = geom.UV
type BoundingBox = geom.BoundingBox

type Shape = shape.Shape
type Mesh = shape.Mesh
type BuildOptions = shape.BuildOptions
type Collider = shape.Collider

// Build a mesh from a shape. Triangulation failures come back as errors
// rather than panics.
func Build(s Shape, opts BuildOptions) (*Mesh, error) {
	mesh, err := s.UpdateMesh(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", s.Kind())
	}
	return mesh, nil
}

// Route build diagnostics to l. Nil silences them again.
func SetLogger(l *slog.Logger) {
	shape.SetLogger(l)
}

type Sprite struct {
	Shape    Shape
	Options  BuildOptions
	Mesh     *Mesh
	Collider Collider
	Material material.Material
	// Nil until one is assigned.
	PhysicsMaterial *physics.Material
	Joints          []physics.Attachment
	// Reference the physics layer knows this sprite's rigidbody by. Empty if
	// the sprite has none, in which case other sprites can't join to it.
	Body string
}

// Create a sprite and build its mesh and collider.
func New(s Shape, opts BuildOptions) (*Sprite, error) {
	sprite := &Sprite{
		Shape:    s,
		Options:  opts,
		Material: material.Default(),
	}
	if err := sprite.Rebuild(); err != nil {
		return nil, err
	}
	return sprite, nil
}

// Rebuild the mesh and collider after the shape's parameters changed. On
// failure the previous mesh and collider are kept.
func (s *Sprite) Rebuild() error {
	mesh, err := Build(s.Shape, s.Options)
	if err != nil {
		return err
	}
	s.Mesh = mesh
	s.Collider = s.Shape.UpdateCollider()
	return nil
}

func (s *Sprite) Center() Point {
	return s.Shape.Center()
}

func (s *Sprite) Rigidbody() (string, bool) {
	return s.Body, s.Body != ""
}

// Add a hinge at the sprite's center. Without options it is pinned to the
// world; see physics.WithMotor and physics.WithConnectedBody.
func (s *Sprite) AddHingeJoint(opts ...physics.Option) physics.Attachment {
	joint := physics.Hinge(s, opts...)
	s.Joints = append(s.Joints, joint)
	return joint
}

// Fix the sprite to the world at its center.
func (s *Sprite) AddFixedJoint() physics.Attachment {
	joint := physics.Fixed(s)
	s.Joints = append(s.Joints, joint)
	return joint
}

// Fix this sprite to other. Nothing is added if other has no rigidbody.
func (s *Sprite) JoinTo(other physics.Body) error {
	joint, err := physics.Join(s, other)
	if err != nil {
		return err
	}
	s.Joints = append(s.Joints, joint)
	return nil
}

// Set bounciness and friction, creating the physics material if the sprite
// doesn't have one yet.
func (s *Sprite) SetPhysicsMaterialProperties(bounciness, friction float64) error {
	m := physics.Material{Bounciness: bounciness, Friction: friction}
	if err := m.Validate(); err != nil {
		return err
	}
	if s.PhysicsMaterial == nil {
		s.PhysicsMaterial = &physics.Material{}
	}
	*s.PhysicsMaterial = m
	return nil
}

// Share m with the sprite. Other sprites holding the same pointer see later
// changes made through SetPhysicsMaterialProperties.
func (s *Sprite) SetPhysicsMaterial(m *physics.Material) {
	s.PhysicsMaterial = m
}

func (s *Sprite) SetRandomColor(r *rand.Rand) {
	s.Material = s.Material.WithColor(material.RandomColor(r))
}

func (s *Sprite) SetMaterial(m material.Material) {
	s.Material = m
}

func (s *Sprite) SetTexture(texture string) {
	s.Material = s.Material.WithTexture(texture)
}

func (s *Sprite) SetMaterialAndTexture(m material.Material, texture string) {
	s.Material = m.WithTexture(texture)
}
