//go:build fightdebug

package fighter

// Built with -tags fightdebug, an out-of-range frame index panics instead of
// being clamped.
const debugAssertions = true
