package ciphers

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// Parameter documents one Settings field used by a cipher.
type Parameter struct {
	Name        string
	Description string
}

// Info describes a registered cipher.
type Info struct {
	Name        string
	Title       string
	Description string
	Parameters  []Parameter
	Defaults    Settings

	build func(Settings) (Cipher, error)
}

// Traits returns the traits of the cipher built with its default settings.
func (i Info) Traits() Traits {
	c, err := i.build(i.Defaults)
	if err != nil {
		return Traits{}
	}
	return c.Traits()
}

var letterKeyParam = Parameter{"key", "Keyword (letters A-Z)"}

var catalog = []Info{
	{
		Name:        "caesar",
		Title:       "Caesar Cipher",
		Description: "A substitution cipher where each letter is shifted a fixed number of places in the alphabet.",
		Parameters:  []Parameter{{"shift", "Number of positions to shift each letter (1-25)"}},
		Defaults:    Settings{Shift: 3},
		build:       func(s Settings) (Cipher, error) { return NewCaesar(s.Shift), nil },
	},
	{
		Name:        "atbash",
		Title:       "Atbash Cipher",
		Description: "A substitution cipher where each letter is mapped to its reverse in the alphabet.",
		build:       func(Settings) (Cipher, error) { return NewAtbash(), nil },
	},
	{
		Name:        "affine",
		Title:       "Affine Cipher",
		Description: "A substitution cipher where each letter is mapped using the function (ax + b) mod 26.",
		Parameters: []Parameter{
			{"a", "Coefficient (must be coprime with 26)"},
			{"b", "Constant term (0-25)"},
		},
		Defaults: Settings{A: 5, B: 8},
		build:    func(s Settings) (Cipher, error) { return NewAffine(s.A, s.B) },
	},
	{
		Name:        "vigenere",
		Title:       "Vigenère Cipher",
		Description: "A polyalphabetic substitution cipher using a keyword to determine shifts.",
		Parameters:  []Parameter{{"key", "Keyword for shifting (non-letters are ignored)"}},
		Defaults:    Settings{Key: "KEY"},
		build:       func(s Settings) (Cipher, error) { return NewVigenere(s.Key) },
	},
	{
		Name:        "autokey",
		Title:       "Autokey Cipher",
		Description: "Similar to Vigenère, but the key is extended using the plaintext itself.",
		Parameters:  []Parameter{letterKeyParam},
		Defaults:    Settings{Key: "KEY"},
		build:       func(s Settings) (Cipher, error) { return NewAutokey(s.Key) },
	},
	{
		Name:        "gronsfeld",
		Title:       "Gronsfeld Cipher",
		Description: "Similar to Vigenère, but using numbers instead of letters for the key.",
		Parameters:  []Parameter{{"key", `Numeric key for shifting (e.g. "31415")`}},
		Defaults:    Settings{Key: "12345"},
		build:       func(s Settings) (Cipher, error) { return NewGronsfeld(s.Key) },
	},
	{
		Name:        "beaufort",
		Title:       "Beaufort Cipher",
		Description: "A variant of Vigenère where the encryption formula is reversed.",
		Parameters:  []Parameter{letterKeyParam},
		Defaults:    Settings{Key: "KEY"},
		build:       func(s Settings) (Cipher, error) { return NewBeaufort(s.Key) },
	},
	{
		Name:        "autoclave",
		Title:       "Autoclave Cipher",
		Description: "A cipher where the key is extended using the ciphertext.",
		Parameters:  []Parameter{letterKeyParam},
		Defaults:    Settings{Key: "KEY"},
		build:       func(s Settings) (Cipher, error) { return NewAutoclave(s.Key) },
	},
	{
		Name:        "hill",
		Title:       "Hill Cipher",
		Description: "A polygraphic substitution cipher based on linear algebra.",
		Parameters:  []Parameter{{"key_matrix", "A 2x2 matrix of integers in [0, 25] with determinant coprime to 26"}},
		Defaults:    Settings{KeyMatrix: [][]int{{2, 1}, {3, 4}}},
		build: func(s Settings) (Cipher, error) {
			m, err := MatrixFromRows(s.KeyMatrix)
			if err != nil {
				return nil, err
			}
			return NewHill(m)
		},
	},
	{
		Name:        "railfence",
		Title:       "Rail Fence Cipher",
		Description: "A transposition cipher that writes text in a zigzag pattern across rails.",
		Parameters:  []Parameter{{"rails", "Number of rails (rows), at least 2"}},
		Defaults:    Settings{Rails: 3},
		build:       func(s Settings) (Cipher, error) { return NewRailFence(s.Rails) },
	},
	{
		Name:        "route",
		Title:       "Route Cipher",
		Description: "A transposition cipher that arranges text in a grid and reads it in a specific route.",
		Parameters: []Parameter{
			{"columns", "Number of columns in the grid, at least 2"},
			{"route_type", "Route type: spiral or snake"},
		},
		Defaults: Settings{Columns: 5, RouteType: RouteSpiral},
		build:    func(s Settings) (Cipher, error) { return NewRoute(s.Columns, s.RouteType) },
	},
	{
		Name:        "myszkowski",
		Title:       "Myszkowski Cipher",
		Description: "A transposition cipher using a keyword to determine column order.",
		Parameters:  []Parameter{{"key", "Keyword for ordering columns (letters A-Z, repeats allowed)"}},
		Defaults:    Settings{Key: "KEY"},
		build:       func(s Settings) (Cipher, error) { return NewMyszkowski(s.Key) },
	},
}

// Names lists the registered cipher names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, info := range catalog {
		names[i] = info.Name
	}
	return names
}

// All returns the catalog in order.
func All() []Info {
	return append([]Info(nil), catalog...)
}

// Lookup finds a cipher by name. Case, spaces, hyphens and underscores are
// ignored, so "Rail-Fence" finds railfence.
func Lookup(name string) (Info, error) {
	norm := normalizeName(name)
	for _, info := range catalog {
		if info.Name == norm {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q (available: %s)", kerrors.ErrUnknownCipher, name, strings.Join(Names(), ", "))
}

// New validates s against the named cipher and builds it.
func New(name string, s Settings) (Cipher, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	c, err := info.build(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", info.Name, err)
	}
	return c, nil
}

// Encrypt runs c in the encrypting direction.
func Encrypt(c Cipher, text string) (string, error) {
	switch c := c.(type) {
	case Asymmetric:
		return c.Encrypt(text)
	case Symmetric:
		return c.Transform(text), nil
	}
	return "", fmt.Errorf("%w: %s cannot encrypt", kerrors.ErrUnsupportedOperation, c.Name())
}

// Decrypt runs c in the decrypting direction.
func Decrypt(c Cipher, text string) (string, error) {
	switch c := c.(type) {
	case Asymmetric:
		return c.Decrypt(text)
	case Symmetric:
		return c.Transform(text), nil
	}
	return "", fmt.Errorf("%w: %s cannot decrypt", kerrors.ErrUnsupportedOperation, c.Name())
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
