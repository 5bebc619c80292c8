// Package planexec evaluates an execution plan built by planbuild against
// an actual HTTP request or response, annotating every node with a result.
// Actions are dispatched through a closed, name-keyed
// registry; unknown names and arity or type mismatches are plan faults.
// A fault is recorded as an Error result on the offending node, the same
// Result kind a match mismatch gets, and evaluation of the remaining
// nodes continues; execution does not stop at the first fault.
package planexec
