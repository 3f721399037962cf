// Package sim provides the page-replacement simulation engine for pagesim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - validate.go: turning raw text into a reference string and frame count
//   - policy.go: the closed set of policies and the Policy state interface
//   - simulator.go: Run/Simulate, which drive one policy and record the trace
//
// # Architecture
//
// Each policy lives in its own file (fifo.go, lru.go, clock.go) and keeps all of
// its state in one struct created per run; nothing in this package is global or
// shared between runs. compare.go runs every policy over the same input and
// sweep.go varies the frame count for one policy.
//
// Sub-packages:
//   - sim/trace/: pure trace data and statistics (Summarize)
//   - sim/export/: text reports, tables and compressed report files
//
// # Snapshot ordering
//
// A step's frame snapshot is a display detail whose ordering depends on the policy:
// FIFO lists pages oldest-inserted first, LRU lists least-recently-used first, and
// Clock lists pages by slot position.
package sim
