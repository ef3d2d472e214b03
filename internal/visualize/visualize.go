// Package visualize renders the working layout of a cipher as plain text:
// the substitution alphabet of a monoalphabetic cipher, or the grid a
// transposition cipher writes its text into.
package visualize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PolarWolf314/scytale/internal/ciphers"
	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// empty marks grid cells that hold no character.
const empty = '.'

// SubstitutionTable shows the plain alphabet over its image under c. Only
// monoalphabetic ciphers have a fixed table.
//
//	plain:  A B C ...
//	cipher: D E F ...
func SubstitutionTable(c ciphers.Cipher) (string, error) {
	if !c.Traits().Monoalphabetic {
		return "", fmt.Errorf("%w: %s has no fixed substitution table", kerrors.ErrUnsupportedOperation, c.Name())
	}
	image, err := ciphers.Encrypt(c, alphabet)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("plain:  " + spaced(alphabet) + "\n")
	b.WriteString("cipher: " + spaced(image) + "\n")
	return b.String(), nil
}

// RailFence draws the zigzag, one line per rail, with dots in unused cells.
func RailFence(c *ciphers.RailFence, text string) string {
	src := []rune(text)
	grid := blankGrid(c.Rails(), len(src))
	for i, row := range c.Pattern(len(src)) {
		grid[row][i] = src[i]
	}
	return render(grid)
}

// Route draws the padded grid, one line per row, followed by the traversal.
func Route(c *ciphers.Route, text string) string {
	var b strings.Builder
	b.WriteString(render(c.Grid(text)))
	fmt.Fprintf(&b, "route: %s\n", c.Traversal())
	return b.String()
}

// Myszkowski draws the key, the rank of each column and the filled rows.
func Myszkowski(c *ciphers.Myszkowski, text string) string {
	key := []rune(c.Key())
	ranks := c.Ranks()
	src := []rune(text)
	rows := (len(src) + len(key) - 1) / len(key)

	grid := blankGrid(rows, len(key))
	for i, r := range src {
		grid[i/len(key)][i%len(key)] = r
	}

	width := 1
	for _, r := range ranks {
		if w := len(strconv.Itoa(r)); w > width {
			width = w
		}
	}
	cell := func(s string) string { return fmt.Sprintf("%-*s", width, s) }

	var b strings.Builder
	line := make([]string, len(key))
	for i, k := range key {
		line[i] = cell(string(k))
	}
	b.WriteString(strings.TrimRight(strings.Join(line, " "), " ") + "\n")
	for i, r := range ranks {
		line[i] = cell(strconv.Itoa(r))
	}
	b.WriteString(strings.TrimRight(strings.Join(line, " "), " ") + "\n")
	for _, row := range grid {
		for i, r := range row {
			line[i] = cell(string(r))
		}
		b.WriteString(strings.TrimRight(strings.Join(line, " "), " ") + "\n")
	}
	return b.String()
}

func blankGrid(rows, cols int) [][]rune {
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(empty), cols))
	}
	return grid
}

func render(grid [][]rune) string {
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(spaced(string(row)))
		b.WriteByte('\n')
	}
	return b.String()
}

func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
