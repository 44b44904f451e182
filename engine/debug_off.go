//go:build !splaydebug

package engine

// debugChecks turns on invariant checks for all trees. Build with tag
// 'splaydebug' to enable them.
const debugChecks = false
