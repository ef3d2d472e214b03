package ciphers

import (
	"sort"
	"strings"
)

// Myszkowski is a columnar transposition in which repeated key letters share
// a rank. Columns with the same rank are read together, row by row, left to
// right.
type Myszkowski struct {
	key   string
	ranks []int
}

func NewMyszkowski(key string) (*Myszkowski, error) {
	if _, err := letterKey(key); err != nil {
		return nil, err
	}
	key = strings.ToUpper(key)
	return &Myszkowski{key: key, ranks: rankKey(key)}, nil
}

func (c *Myszkowski) Name() string { return "myszkowski" }

func (c *Myszkowski) Traits() Traits { return Traits{} }

// Key returns the upper-cased keyword.
func (c *Myszkowski) Key() string { return c.key }

// Ranks returns the 1-based rank of each key column. "TOMATO" gives
// [4 3 2 1 4 3].
func (c *Myszkowski) Ranks() []int { return append([]int(nil), c.ranks...) }

func rankKey(key string) []int {
	seen := map[rune]bool{}
	var unique []rune
	for _, c := range key {
		if !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	pos := make(map[rune]int, len(unique))
	for i, c := range unique {
		pos[c] = i + 1
	}
	ranks := make([]int, 0, len(key))
	for _, c := range key {
		ranks = append(ranks, pos[c])
	}
	return ranks
}

// groups returns column indices grouped by rank, lowest rank first.
func (c *Myszkowski) groups() [][]int {
	maxRank := 0
	for _, r := range c.ranks {
		if r > maxRank {
			maxRank = r
		}
	}
	groups := make([][]int, maxRank)
	for col, r := range c.ranks {
		groups[r-1] = append(groups[r-1], col)
	}
	return groups
}

// readOrder returns, for text of length n, the plaintext index of each
// ciphertext position.
func (c *Myszkowski) readOrder(n int) []int {
	width := len(c.ranks)
	rows := (n + width - 1) / width
	order := make([]int, 0, n)
	for _, group := range c.groups() {
		for row := 0; row < rows; row++ {
			for _, col := range group {
				if i := row*width + col; i < n {
					order = append(order, i)
				}
			}
		}
	}
	return order
}

func (c *Myszkowski) Encrypt(text string) (string, error) {
	src := []rune(text)
	out := make([]rune, 0, len(src))
	for _, i := range c.readOrder(len(src)) {
		out = append(out, src[i])
	}
	return string(out), nil
}

// Decrypt replays the rank-grouped read order to put each ciphertext
// character back in its cell.
func (c *Myszkowski) Decrypt(text string) (string, error) {
	src := []rune(text)
	out := make([]rune, len(src))
	for k, i := range c.readOrder(len(src)) {
		out[i] = src[k]
	}
	return string(out), nil
}
