package value

// Config collects the mutable, externally-visible configuration variables
// of spec §6.2. It is an explicit, constructible object rather than a set
// of package-level globals, so tests can build independent contexts (see
// the window tree's design notes on encapsulating process-wide state).
type Config struct {
	// WindowMinHeight is the minimum leaf height in screen rows. Default 4,
	// clamped to >= 2.
	WindowMinHeight int
	// WindowMinWidth is the minimum leaf width in screen columns. Default
	// 10, clamped to >= 2.
	WindowMinWidth int
	// PopUpWindows enables component G's step 5 (split-or-reuse policy)
	// instead of always reusing the LRU window.
	PopUpWindows bool
	// SplitHeightThreshold is the minimum height a full-width window must
	// have before display-buffer will split it vertically.
	SplitHeightThreshold int
	// NextScreenContextLines is the overlap, in lines, kept between the
	// old and new viewport on a full-window scroll.
	NextScreenContextLines int
	// AutoNewScreen makes display-buffer create a new screen rather than
	// split or reuse a window.
	AutoNewScreen bool
}

// DefaultConfig returns spec §6.2's defaults.
func DefaultConfig() Config {
	return Config{
		WindowMinHeight:        4,
		WindowMinWidth:         10,
		PopUpWindows:           true,
		SplitHeightThreshold:   500,
		NextScreenContextLines: 2,
		AutoNewScreen:          false,
	}
}

// Normalize clamps WindowMinHeight/WindowMinWidth to their documented
// floors (>= 2), matching spec §6.2's "clamped >= 2" note. Call after
// constructing or mutating a Config by hand.
func (c Config) Normalize() Config {
	if c.WindowMinHeight < 2 {
		c.WindowMinHeight = 2
	}
	if c.WindowMinWidth < 2 {
		c.WindowMinWidth = 2
	}
	return c
}
