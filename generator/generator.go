// Package generator defines the hook the matching engine exposes for
// dynamic value generation, without evaluating generators itself.
// Policy — when and whether to apply a
// generator — belongs to a collaborator outside the core; this package
// ships exactly one concrete Generator as a worked example of the shape
// such a collaborator would implement.
package generator

import "github.com/google/uuid"

// Generator produces a dynamic value. The matching engine never calls
// Generate itself; interactions carry only generator configurations
// (interaction.GeneratorSpec/Generators: a type name and its settings),
// which a collaborator maps to a Generator and evaluates.
type Generator interface {
	// Type names the generator kind, e.g. "Uuid", matching the "type"
	// field of a generator's wire representation.
	Type() string
	// Generate produces a value. seed, when non-nil, lets a deterministic
	// caller (such as a test) avoid relying on process randomness.
	Generate(seed []byte) (interface{}, error)
}

// UUIDGenerator produces RFC 4122 UUIDs. It is the one concrete Generator
// this package ships, to document the shape a real generator takes; the
// core never invokes it during plan building or execution.
type UUIDGenerator struct{}

func (UUIDGenerator) Type() string { return "Uuid" }

func (UUIDGenerator) Generate(seed []byte) (interface{}, error) {
	if len(seed) == 16 {
		id, err := uuid.FromBytes(seed)
		if err != nil {
			return nil, err
		}
		return id.String(), nil
	}
	return uuid.NewString(), nil
}
