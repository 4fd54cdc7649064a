//go:build slidedebug

package engine

const debugAssertions = true
