// Package testutil provides testing utilities for vecdist.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random vector generators for every element type and
// float64 reference implementations to check kernels against.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	x, y := testutil.Vectors[int8](rng, 128)
//	u := rng.UnitVector(128)
//
// # Reference Results
//
//	want := testutil.SquaredL2(x, y)
//	assert.LessOrEqual(t, testutil.RelativeError(float64(got), want), 1e-3)
package testutil
