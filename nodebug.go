//go:build !geomdebug

package geom

const debugAssertions = false
