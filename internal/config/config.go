// Package config holds the small set of settings the CLI can produce:
// the ROM path and the optional Nyan presentation toggle. There is no
// file-based configuration layer, only CLI flags, so this is
// deliberately a plain struct rather than a config-file loader.
package config

import "errors"

// Config is the fully resolved set of run-time options for a single
// chip8go invocation.
type Config struct {
	// ROMPath is the filesystem path to the CHIP-8 ROM to load.
	ROMPath string

	// Nyan enables the color-rotation presentation mode.
	Nyan bool
}

// Validate reports whether cfg is usable; it is called once, right
// after flag parsing, so load errors surface before any worker starts.
func (c Config) Validate() error {
	if c.ROMPath == "" {
		return errors.New("config: --rom is required")
	}
	return nil
}
