// Package benchmark holds cross-package benchmarks comparing hand-written
// loops with adaptor composition and Chain pipelines.
package benchmark
