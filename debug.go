//go:build geomdebug

package geom

// debugAssertions enables checks of caller contracts that are too expensive,
// or too strict, for production builds.
const debugAssertions = true
