//go:build splaydebug

package engine

const debugChecks = true
