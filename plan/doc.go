// Package plan implements the execution-plan intermediate representation
// that a contract's matching rules are compiled into before being run
// against a value under test. A plan is a tree of Nodes;
// see planbuild for the compiler and planexec for the evaluator.
package plan
