//go:build !fightdebug

package fighter

const debugAssertions = false
