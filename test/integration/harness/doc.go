// Package harness provides utilities for integration testing the mergebench CLI.
// It handles binary compilation, environment isolation, git fixtures and
// command execution.
//
// Environment variables managed:
//   - MERGEBENCH_HOME: Isolated per test (temp directory)
//   - MERGEBENCH_DEBUG: Disabled to reduce noise
package harness
