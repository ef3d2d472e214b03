package ciphers

import (
	"errors"
	"reflect"
	"testing"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

func TestRailFence(t *testing.T) {
	tests := []struct {
		name  string
		rails int
		plain string
		want  string
	}{
		{"classic three rails", 3, "WEAREDISCOVEREDFLEEATONCE", "WECRLTEERDSOEEFEAOCAIVDEN"},
		{"two rails alternate", 2, "HELLOWORLD", "HLOOLELWRD"},
		{"rails exceed length", 5, "ABC", "ABC"},
		{"rails equal length", 3, "ABC", "ABC"},
		{"keeps spaces", 2, "a b c", "abc  "},
		{"empty", 4, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewRailFence(tt.rails)
			if err != nil {
				t.Fatalf("NewRailFence(%d) failed: %v", tt.rails, err)
			}
			got, _ := c.Encrypt(tt.plain)
			if got != tt.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tt.plain, got, tt.want)
			}
			if back, _ := c.Decrypt(got); back != tt.plain {
				t.Errorf("Decrypt(%q) = %q, want %q", got, back, tt.plain)
			}
		})
	}

	for _, rails := range []int{-1, 0, 1} {
		if _, err := NewRailFence(rails); !errors.Is(err, kerrors.ErrInvalidKey) {
			t.Errorf("NewRailFence(%d) error = %v, want ErrInvalidKey", rails, err)
		}
	}
}

func TestRailFencePattern(t *testing.T) {
	c, _ := NewRailFence(3)
	want := []int{0, 1, 2, 1, 0, 1, 2}
	if got := c.Pattern(7); !reflect.DeepEqual(got, want) {
		t.Errorf("Pattern(7) = %v, want %v", got, want)
	}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		route   RouteType
		plain   string
		want    string
	}{
		{"spiral square", 3, RouteSpiral, "ABCDEFGHI", "ABCFIHGDE"},
		{"spiral four by four", 4, RouteSpiral, "ABCDEFGHIJKLMNOP", "ABCDHLPONMIEFGKJ"},
		{"snake square", 3, RouteSnake, "ABCDEFGHI", "ABCFEDGHI"},
		{"default route is spiral", 3, "", "ABCDEFGHI", "ABCFIHGDE"},
		{"single row", 4, RouteSpiral, "ABCD", "ABCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewRoute(tt.columns, tt.route)
			if err != nil {
				t.Fatalf("NewRoute failed: %v", err)
			}
			got, _ := c.Encrypt(tt.plain)
			if got != tt.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tt.plain, got, tt.want)
			}
			if back, _ := c.Decrypt(got); back != tt.plain {
				t.Errorf("Decrypt(%q) = %q, want %q", got, back, tt.plain)
			}
		})
	}
}

func TestRoutePadding(t *testing.T) {
	c, _ := NewRoute(3, RouteSpiral)
	got, _ := c.Encrypt("HELLO")
	if got != "HELxOL" {
		t.Errorf("Encrypt(HELLO) = %q, want HELxOL", got)
	}
	// Padding survives decryption.
	if back, _ := c.Decrypt(got); back != "HELLOx" {
		t.Errorf("Decrypt = %q, want HELLOx", back)
	}
	// Short ciphertext still decrypts without panicking.
	if back, _ := c.Decrypt("HELLO"); len(back) != 5 {
		t.Errorf("Decrypt(HELLO) = %q, want 5 characters", back)
	}
}

func TestRouteValidation(t *testing.T) {
	if _, err := NewRoute(1, RouteSpiral); !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("NewRoute(1) error = %v, want ErrInvalidKey", err)
	}
	if _, err := NewRoute(3, "zigzag"); !errors.Is(err, kerrors.ErrUnknownRoute) {
		t.Errorf("NewRoute(zigzag) error = %v, want ErrUnknownRoute", err)
	}
	if rt, err := ParseRouteType(" Snake "); err != nil || rt != RouteSnake {
		t.Errorf("ParseRouteType(Snake) = %q, %v", rt, err)
	}
}

func TestMyszkowskiRanks(t *testing.T) {
	c, err := NewMyszkowski("tomato")
	if err != nil {
		t.Fatalf("NewMyszkowski failed: %v", err)
	}
	want := []int{4, 3, 2, 1, 4, 3}
	if got := c.Ranks(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ranks() = %v, want %v", got, want)
	}

	lemon, _ := NewMyszkowski("LEMON")
	if got := lemon.Ranks(); !reflect.DeepEqual(got, []int{2, 1, 3, 5, 4}) {
		t.Errorf("LEMON ranks = %v, want [2 1 3 5 4]", got)
	}
}

func TestMyszkowski(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		plain string
		want  string
	}{
		{"tied columns read together", "TOMATO", "WEAREDISCOVEREDFLEEATONCE", "ROFOACDTEDSEEEACWEIVRLENE"},
		{"all ties is identity", "AAA", "HELLO", "HELLO"},
		{"distinct letters", "BA", "ABCD", "BDAC"},
		{"shorter than key", "ZYX", "HI", "IH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewMyszkowski(tt.key)
			if err != nil {
				t.Fatalf("NewMyszkowski failed: %v", err)
			}
			got, _ := c.Encrypt(tt.plain)
			if got != tt.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tt.plain, got, tt.want)
			}
			if back, _ := c.Decrypt(got); back != tt.plain {
				t.Errorf("Decrypt(%q) = %q, want %q", got, back, tt.plain)
			}
		})
	}
}
