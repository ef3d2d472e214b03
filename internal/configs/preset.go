package configs

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/scytale/internal/ciphers"
)

// Preset is one [ciphers.<name>] table. A nil field means the key is absent
// from the file, so an explicit zero such as b = 0 survives the overlay.
type Preset struct {
	Shift     *int               `toml:"shift" json:"shift,omitempty"`
	A         *int               `toml:"a" json:"a,omitempty"`
	B         *int               `toml:"b" json:"b,omitempty"`
	Key       *string            `toml:"key" json:"key,omitempty"`
	KeyMatrix [][]int            `toml:"key_matrix,omitempty" json:"key_matrix,omitempty"`
	Rails     *int               `toml:"rails" json:"rails,omitempty"`
	Columns   *int               `toml:"columns" json:"columns,omitempty"`
	RouteType *ciphers.RouteType `toml:"route_type" json:"route_type,omitempty"`
}

// PresetOf returns a Preset setting every non-zero field of s.
func PresetOf(s ciphers.Settings) Preset {
	var p Preset
	if s.Shift != 0 {
		p.Shift = &s.Shift
	}
	if s.A != 0 || s.B != 0 {
		p.A, p.B = &s.A, &s.B
	}
	if s.Key != "" {
		p.Key = &s.Key
	}
	if len(s.KeyMatrix) > 0 {
		p.KeyMatrix = s.KeyMatrix
	}
	if s.Rails != 0 {
		p.Rails = &s.Rails
	}
	if s.Columns != 0 {
		p.Columns = &s.Columns
	}
	if s.RouteType != "" {
		p.RouteType = &s.RouteType
	}
	return p
}

// Apply lays every key the preset defines over base, zero values included.
func (p Preset) Apply(base ciphers.Settings) ciphers.Settings {
	if p.Shift != nil {
		base.Shift = *p.Shift
	}
	if p.A != nil {
		base.A = *p.A
	}
	if p.B != nil {
		base.B = *p.B
	}
	if p.Key != nil {
		base.Key = *p.Key
	}
	if p.KeyMatrix != nil {
		base.KeyMatrix = p.KeyMatrix
	}
	if p.Rails != nil {
		base.Rails = *p.Rails
	}
	if p.Columns != nil {
		base.Columns = *p.Columns
	}
	if p.RouteType != nil {
		base.RouteType = *p.RouteType
	}
	return base
}

// String renders the defined keys as key=value pairs in file order.
func (p Preset) String() string {
	var parts []string
	if p.Shift != nil {
		parts = append(parts, fmt.Sprintf("shift=%d", *p.Shift))
	}
	if p.A != nil {
		parts = append(parts, fmt.Sprintf("a=%d", *p.A))
	}
	if p.B != nil {
		parts = append(parts, fmt.Sprintf("b=%d", *p.B))
	}
	if p.Key != nil {
		parts = append(parts, "key="+*p.Key)
	}
	if p.KeyMatrix != nil {
		parts = append(parts, fmt.Sprintf("key_matrix=%v", p.KeyMatrix))
	}
	if p.Rails != nil {
		parts = append(parts, fmt.Sprintf("rails=%d", *p.Rails))
	}
	if p.Columns != nil {
		parts = append(parts, fmt.Sprintf("columns=%d", *p.Columns))
	}
	if p.RouteType != nil {
		parts = append(parts, "route_type="+string(*p.RouteType))
	}
	return strings.Join(parts, " ")
}
