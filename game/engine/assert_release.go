//go:build !slidedebug

package engine

const debugAssertions = false
