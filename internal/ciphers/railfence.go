package ciphers

import (
	"fmt"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// RailFence writes text in a zigzag over a number of rails and reads the
// rails top to bottom. Every character, letter or not, takes part.
type RailFence struct {
	rails int
}

func NewRailFence(rails int) (*RailFence, error) {
	if rails < 2 {
		return nil, fmt.Errorf("%w: rails must be at least 2, got %d", kerrors.ErrInvalidKey, rails)
	}
	return &RailFence{rails: rails}, nil
}

func (c *RailFence) Name() string { return "railfence" }

func (c *RailFence) Traits() Traits { return Traits{} }

// Rails returns the number of rails.
func (c *RailFence) Rails() int { return c.rails }

// Pattern returns the rail each of n consecutive characters lands on.
func (c *RailFence) Pattern(n int) []int {
	rows := make([]int, n)
	rail, dir := 0, 1
	for i := range rows {
		rows[i] = rail
		rail += dir
		if rail == 0 || rail == c.rails-1 {
			dir = -dir
		}
	}
	return rows
}

func (c *RailFence) Encrypt(text string) (string, error) {
	src := []rune(text)
	fence := make([][]rune, c.rails)
	for i, row := range c.Pattern(len(src)) {
		fence[row] = append(fence[row], src[i])
	}
	out := make([]rune, 0, len(src))
	for _, row := range fence {
		out = append(out, row...)
	}
	return string(out), nil
}

func (c *RailFence) Decrypt(text string) (string, error) {
	src := []rune(text)
	pattern := c.Pattern(len(src))

	counts := make([]int, c.rails)
	for _, row := range pattern {
		counts[row]++
	}
	fence := make([][]rune, c.rails)
	pos := 0
	for row, n := range counts {
		fence[row] = src[pos : pos+n]
		pos += n
	}

	next := make([]int, c.rails)
	out := make([]rune, len(src))
	for i, row := range pattern {
		out[i] = fence[row][next[row]]
		next[row]++
	}
	return string(out), nil
}
