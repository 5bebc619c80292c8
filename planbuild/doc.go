// Package planbuild compiles an expected HTTP request or response and a
// matching context into an execution plan tree. The
// builder never looks at the actual interaction; planexec does that.
package planbuild
