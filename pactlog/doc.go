// Package pactlog configures the engine's diagnostic logging: the plan
// and plan-summary logs gated by matchctx.Config. Built on logrus.
package pactlog
