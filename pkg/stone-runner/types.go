package stonerunner

import (
	"github.com/cairokit/stone-runner/internal/stone-runner/models"
	"github.com/cairokit/stone-runner/internal/stone-runner/runner"
)

// Layout identifies the memory/segment arrangement profile of the program
// being proved
type Layout = models.Layout

// The eight layouts the engine accepts.
const (
	LayoutPlain                = models.LayoutPlain
	LayoutSmall                = models.LayoutSmall
	LayoutDex                  = models.LayoutDex
	LayoutRecursive            = models.LayoutRecursive
	LayoutStarknet             = models.LayoutStarknet
	LayoutRecursiveLargeOutput = models.LayoutRecursiveLargeOutput
	LayoutAllSolidity          = models.LayoutAllSolidity
	LayoutStarknetWithKeccak   = models.LayoutStarknetWithKeccak
)

// CachedLdeConfig controls how the engine caches low-degree extensions
type CachedLdeConfig = models.CachedLdeConfig

// ProverConfig carries the engine-agnostic tuning knobs of the prover
type ProverConfig = models.ProverConfig

// FriParameters tunes the FRI low-degree test
type FriParameters = models.FriParameters

// StarkParameters groups the STARK-level knobs around the FRI parameters
type StarkParameters = models.StarkParameters

// ProverParameters carries the program-specific parameters of the prover
type ProverParameters = models.ProverParameters

// MemorySegment is a half-open address range of one memory segment
type MemorySegment = models.MemorySegment

// MemorySegments names the six segments every layout exposes
type MemorySegments = models.MemorySegments

// MemorySlot is one public memory cell
type MemorySlot = models.MemorySlot

// PublicInput is the verifier-visible half of the engine's input contract
type PublicInput = models.PublicInput

// PrivateInput is the prover-only half of the engine's input contract.
// Callers never construct it: it is derived inside each run from the
// working directory's memory and trace files. It is exported for users
// who handle the engine's files themselves.
type PrivateInput = models.PrivateInput

// Proof is the decoded engine output
type Proof = models.Proof

// ProverError represents a classified prover invocation error
type ProverError = runner.ProverError

// ErrorCode classifies a prover invocation failure
type ErrorCode = runner.ErrorCode

// Error codes carried by ProverError.
const (
	ErrUnknown = runner.ErrUnknown
	ErrIO      = runner.ErrIO
	ErrSpawn   = runner.ErrSpawn
	ErrCommand = runner.ErrCommand
	ErrDecode  = runner.ErrDecode
)

// DefaultProverConfig returns the configuration shipped with the engine's
// own examples
func DefaultProverConfig() *ProverConfig {
	return models.DefaultProverConfig()
}

// ProverParametersFromSteps derives standard prover parameters for a
// program execution of the given step count
func ProverParametersFromSteps(nSteps int) *ProverParameters {
	return models.ProverParametersFromSteps(nSteps)
}

// NewPrivateInput builds a private input referencing the given memory and
// trace files, with the placeholder sequences empty
func NewPrivateInput(memoryPath, tracePath string) *PrivateInput {
	return models.NewPrivateInput(memoryPath, tracePath)
}
