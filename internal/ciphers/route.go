package ciphers

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// RouteType selects the traversal used to read a Route grid.
type RouteType string

const (
	RouteSpiral RouteType = "spiral"
	RouteSnake  RouteType = "snake"
)

// ParseRouteType accepts "spiral" or "snake" in any case. An empty string
// means spiral.
func ParseRouteType(s string) (RouteType, error) {
	switch RouteType(strings.ToLower(strings.TrimSpace(s))) {
	case "", RouteSpiral:
		return RouteSpiral, nil
	case RouteSnake:
		return RouteSnake, nil
	}
	return "", fmt.Errorf("%w: %q (valid values: %s, %s)", kerrors.ErrUnknownRoute, s, RouteSpiral, RouteSnake)
}

// Route writes text row by row into a grid of fixed width, padded with 'x',
// and reads it back along a spiral or snake path.
//
// Decrypt infers the grid height from the ciphertext length alone. It is
// exact for ciphertext produced by Encrypt, but padding is kept in the
// recovered text, and ciphertext whose length is not a multiple of the
// column count is only approximately inverted.
type Route struct {
	columns int
	route   RouteType
}

func NewRoute(columns int, route RouteType) (*Route, error) {
	if columns < 2 {
		return nil, fmt.Errorf("%w: columns must be at least 2, got %d", kerrors.ErrInvalidKey, columns)
	}
	rt, err := ParseRouteType(string(route))
	if err != nil {
		return nil, err
	}
	return &Route{columns: columns, route: rt}, nil
}

func (c *Route) Name() string { return "route" }

func (c *Route) Traits() Traits { return Traits{} }

func (c *Route) Columns() int { return c.columns }

func (c *Route) Traversal() RouteType { return c.route }

// Grid returns text padded with 'x' and cut into rows of Columns() runes.
func (c *Route) Grid(text string) [][]rune {
	src := []rune(text)
	rows := (len(src) + c.columns - 1) / c.columns
	for len(src) < rows*c.columns {
		src = append(src, padLetter)
	}
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = src[r*c.columns : (r+1)*c.columns]
	}
	return grid
}

func (c *Route) Encrypt(text string) (string, error) {
	grid := c.Grid(text)
	out := make([]rune, 0, len(grid)*c.columns)
	for _, cell := range c.order(len(grid)) {
		out = append(out, grid[cell/c.columns][cell%c.columns])
	}
	return string(out), nil
}

func (c *Route) Decrypt(text string) (string, error) {
	src := []rune(text)
	rows := (len(src) + c.columns - 1) / c.columns
	cells := make([]rune, rows*c.columns)
	filled := make([]bool, len(cells))
	for k, cell := range c.order(rows) {
		if k >= len(src) {
			break
		}
		cells[cell] = src[k]
		filled[cell] = true
	}
	out := make([]rune, 0, len(src))
	for i, r := range cells {
		if filled[i] {
			out = append(out, r)
		}
	}
	return string(out), nil
}

// order lists row-major cell indices in traversal order.
func (c *Route) order(rows int) []int {
	if c.route == RouteSnake {
		return snakeOrder(rows, c.columns)
	}
	return spiralOrder(rows, c.columns)
}

func snakeOrder(rows, cols int) []int {
	out := make([]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for j := 0; j < cols; j++ {
			col := j
			if r%2 == 1 {
				col = cols - 1 - j
			}
			out = append(out, r*cols+col)
		}
	}
	return out
}

// spiralOrder walks clockwise from the top-left corner, shrinking the
// boundary after each side.
func spiralOrder(rows, cols int) []int {
	out := make([]int, 0, rows*cols)
	top, bottom, left, right := 0, rows-1, 0, cols-1
	for dir := 0; top <= bottom && left <= right; dir = (dir + 1) % 4 {
		switch dir {
		case 0:
			for j := left; j <= right; j++ {
				out = append(out, top*cols+j)
			}
			top++
		case 1:
			for i := top; i <= bottom; i++ {
				out = append(out, i*cols+right)
			}
			right--
		case 2:
			for j := right; j >= left; j-- {
				out = append(out, bottom*cols+j)
			}
			bottom--
		case 3:
			for i := bottom; i >= top; i-- {
				out = append(out, i*cols+left)
			}
			left++
		}
	}
	return out
}
