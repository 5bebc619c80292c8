// Package pactmetrics exposes prometheus collectors sized to what
// planbuild and planexec can exercise: plan build/execute duration and
// best-matcher selection counts. planbuild and planexec accept an optional
// *Metrics and record build/execute durations into it when one is given;
// best-matcher selections are counted only where a caller calls
// ObserveBestMatcherSelection itself.
package pactmetrics
