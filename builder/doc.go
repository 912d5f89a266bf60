// Package builder provides deterministic graph generators for tests,
// benchmarks and the empirical timing harness.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, gopts, bopts, cons...): creates a core.Graph over n
//     vertices and applies constructors in order.
//     – Constructor: a closure that adds edges to a graph using the resolved
//     builderConfig.
//   - Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Vertex schemes (IDFn): map a constructor's local index to a store vertex.
//     – DefaultIDFn:     identity (local i → vertex i).
//     – OffsetIDFn(k):   local i → vertex i+k, to place several topologies
//     side by side in one store.
//     – PermutationIDFn: local i → perm[i], to relabel a topology.
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn:      constant DefaultEdgeWeight.
//     – ConstantWeightFn:     fixed value.
//     – UniformWeightFn:      continuous ∼U[min,max).
//     – UniformIntWeightFn:   integers drawn uniformly from [min,max].
//     – NormalWeightFn:       rounded Gaussian, clipped at 0.
//     – ExponentialWeightFn:  rounded exponential.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical
//     edge catalogs (IDs, endpoints and weights).
//   - Option constructors panic on meaningless literals; constructors never
//     panic and return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
//   - Store errors (a mapped vertex outside [0, n), a weight rejected by the
//     store's policy) are returned wrapped with the constructor name.
package builder
