package ciphers

// Settings carries the parameters for one cipher call. Only the fields the
// selected cipher reads are consulted; the rest are ignored. Zero is a real
// value here: presets that leave a key unset are resolved before a Settings
// is built.
type Settings struct {
	Shift     int
	A         int
	B         int
	Key       string
	KeyMatrix [][]int
	Rails     int
	Columns   int
	RouteType RouteType
}
