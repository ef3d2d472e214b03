package ciphers

// alphabetSize is the modulus for all letter arithmetic.
const alphabetSize = 26

// padLetter fills incomplete Hill pairs and Route grids.
const padLetter = 'x'

// rank returns the 0-25 alphabet position of r and whether r is an ASCII letter.
func rank(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	}
	return 0, false
}

// rebase maps rank n back onto a letter with the same case as like.
func rebase(like rune, n int) rune {
	if like >= 'a' && like <= 'z' {
		return rune('a' + n)
	}
	return rune('A' + n)
}

// mod reduces n into [0, 26) for negative operands as well.
func mod(n int) int {
	return ((n % alphabetSize) + alphabetSize) % alphabetSize
}

// mapLetters rewrites every letter of text through fn, called with the
// letter's ordinal among letters seen so far and its rank. Non-letters are
// copied unchanged and do not advance the ordinal.
func mapLetters(text string, fn func(ord, r int) int) string {
	out := []rune(text)
	ord := 0
	for i, c := range out {
		r, ok := rank(c)
		if !ok {
			continue
		}
		out[i] = rebase(c, mod(fn(ord, r)))
		ord++
	}
	return string(out)
}

// letterRanks returns the ranks of the letters in text, in order.
func letterRanks(text string) []int {
	var ranks []int
	for _, c := range text {
		if r, ok := rank(c); ok {
			ranks = append(ranks, r)
		}
	}
	return ranks
}
