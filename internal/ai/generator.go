package ai

// Generator owns the generation pipeline: every agent role is a method that
// builds its role directive, runs one gateway exchange under its own
// conversation handle, extracts the payload, and validates it per role.
type Generator struct {
	gateway Exchanger
}

// NewGenerator wires the generator to a model gateway. The gateway is
// injected so the pipeline can be exercised against a mock.
func NewGenerator(gateway Exchanger) *Generator {
	return &Generator{gateway: gateway}
}
