package main

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"exhibit/pkg/paint"
)

// parseColor reads a "#rrggbb" hex color.
func parseColor(s string) (paint.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return paint.Color{}, errors.Wrapf(err, "parse color %q", s)
	}
	r, g, b := c.RGB255()
	return paint.New(int(r), int(g), int(b)), nil
}

func parseColors(list []string) ([]paint.Color, error) {
	colors := make([]paint.Color, 0, len(list))
	for _, s := range list {
		c, err := parseColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
