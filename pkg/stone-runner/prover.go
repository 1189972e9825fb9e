package stonerunner

import (
	"context"

	"github.com/cairokit/stone-runner/internal/stone-runner/runner"
)

// DefaultBinary is the name the engine installs under
const DefaultBinary = runner.DefaultBinary

// Prover invokes the external engine. The zero value is not usable;
// construct it with DefaultProver.
type Prover struct {
	// Binary is the engine executable, resolved through PATH when it is
	// a bare name.
	Binary string
}

// DefaultProver returns a prover that resolves the engine through PATH
func DefaultProver() *Prover {
	return &Prover{Binary: DefaultBinary}
}

// WithBinary points the prover at an explicit engine executable
func (p *Prover) WithBinary(binary string) *Prover {
	p.Binary = binary
	return p
}

// Run proves one program execution, blocking until the engine exits.
//
//   - publicInput: the public prover input generated by the program
//   - memory: the memory output of the program
//   - trace: the execution trace of the program
//   - config: prover configuration
//   - parameters: prover parameters for the program
//
// The temporary working directory backing the run is removed before Run
// returns, on success and on every error path.
func (p *Prover) Run(publicInput *PublicInput, memory, trace []byte, config *ProverConfig, parameters *ProverParameters) (*Proof, error) {
	return runner.Run(context.Background(), p.Binary, publicInput, memory, trace, config, parameters)
}

// RunContext is Run under a caller-controlled context: same files, same
// flags, same success and error mapping. Cancelling ctx kills the engine
// process and fails the run with an ErrCommand error whose cause is the
// context error. There is no orphan mode: the engine never outlives an
// abandoned run.
func (p *Prover) RunContext(ctx context.Context, publicInput *PublicInput, memory, trace []byte, config *ProverConfig, parameters *ProverParameters) (*Proof, error) {
	return runner.Run(ctx, p.Binary, publicInput, memory, trace, config, parameters)
}

// Job is one independent prover invocation within a batch
type Job = runner.Job

// RunAll proves every job concurrently, at most limit at a time (no limit
// when limit <= 0). Each job owns its own working directory and engine
// process, so jobs never contend on shared state. The first failure
// cancels the remaining jobs; on success proofs come back in job order.
func (p *Prover) RunAll(ctx context.Context, jobs []Job, limit int) ([]*Proof, error) {
	return runner.RunAll(ctx, p.Binary, jobs, limit)
}

// Run proves one program execution with the default prover
func Run(publicInput *PublicInput, memory, trace []byte, config *ProverConfig, parameters *ProverParameters) (*Proof, error) {
	return DefaultProver().Run(publicInput, memory, trace, config, parameters)
}

// RunContext proves one program execution with the default prover under a
// caller-controlled context
func RunContext(ctx context.Context, publicInput *PublicInput, memory, trace []byte, config *ProverConfig, parameters *ProverParameters) (*Proof, error) {
	return DefaultProver().RunContext(ctx, publicInput, memory, trace, config, parameters)
}
