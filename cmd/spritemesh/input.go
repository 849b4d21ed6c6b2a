package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/spritemesh"
	"github.com/osuushi/spritemesh/geom"
	"github.com/osuushi/spritemesh/material"
	"github.com/osuushi/spritemesh/shape"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A shape document, optionally with a material section:
//
//	kind: circle
//	radius: 2
//	sides: 48
//	material:
//	  color: "#ff8800"
//	  texture: wood.png
type document struct {
	Shape    shape.Spec    `yaml:",inline"`
	Material *materialSpec `yaml:"material,omitempty"`
}

type materialSpec struct {
	Name    string `yaml:"name"`
	Color   string `yaml:"color"`
	Texture string `yaml:"texture"`
}

func decodeDocument(r io.Reader) (document, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return document{}, errors.Wrap(err, "decoding shape document")
	}
	return doc, nil
}

func (doc document) apply(sprite *spritemesh.Sprite) error {
	if doc.Material == nil {
		return nil
	}
	m := material.Default()
	if doc.Material.Name != "" {
		m.Name = doc.Material.Name
	}
	if doc.Material.Color != "" {
		c, err := material.ParseColor(doc.Material.Color)
		if err != nil {
			return err
		}
		m = m.WithColor(c)
	}
	sprite.SetMaterialAndTexture(m, doc.Material.Texture)
	return nil
}

// Read "x y" lines. With stopAtBlank, the first blank line after at least one
// point ends the input; otherwise blank lines are skipped.
func readPoints(in io.Reader, stopAtBlank bool) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if stopAtBlank && len(points) > 0 {
				break
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "parsing y")
	}
	return geom.Point{X: x, Y: y}, nil
}
