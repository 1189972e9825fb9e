package models

import (
	"github.com/cairokit/stone-runner/internal/stone-runner/utils"
)

// FriParameters tunes the FRI low-degree test. The values are opaque to
// this layer and forwarded to the engine unmodified.
type FriParameters struct {
	FriStepList          []uint32 `json:"fri_step_list"`
	LastLayerDegreeBound uint32   `json:"last_layer_degree_bound"`
	NQueries             uint32   `json:"n_queries"`
	ProofOfWorkBits      uint32   `json:"proof_of_work_bits"`
}

// StarkParameters groups the STARK-level knobs around the FRI parameters.
type StarkParameters struct {
	Fri        FriParameters `json:"fri"`
	LogNCosets int           `json:"log_n_cosets"`
}

// ProverParameters carries the program-specific parameters of the prover,
// serialized verbatim to parameters.json.
type ProverParameters struct {
	Field             string          `json:"field"`
	Stark             StarkParameters `json:"stark"`
	UseExtensionField bool            `json:"use_extension_field"`
}

const (
	defaultLastLayerDegreeBound = 64
	defaultLogNCosets           = 4
	defaultNQueries             = 18
	defaultProofOfWorkBits      = 24

	// The engine caps individual FRI steps at 4.
	maxFriStep = 4
)

// ProverParametersFromSteps derives standard prover parameters for a
// program execution of the given step count. The FRI step list is sized
// so the sum of steps covers the trace degree after the last layer bound
// is subtracted, with the leading step fixed at 0 as the engine expects.
func ProverParametersFromSteps(nSteps int) *ProverParameters {
	degree := utils.Log2(utils.NextPowerOfTwo(nSteps)) +
		defaultLogNCosets -
		utils.Log2(defaultLastLayerDegreeBound)
	if degree < 0 {
		degree = 0
	}

	steps := []uint32{0}
	for degree >= maxFriStep {
		steps = append(steps, maxFriStep)
		degree -= maxFriStep
	}
	if degree > 0 {
		steps = append(steps, uint32(degree))
	}

	return &ProverParameters{
		Field: "PrimeField0",
		Stark: StarkParameters{
			Fri: FriParameters{
				FriStepList:          steps,
				LastLayerDegreeBound: defaultLastLayerDegreeBound,
				NQueries:             defaultNQueries,
				ProofOfWorkBits:      defaultProofOfWorkBits,
			},
			LogNCosets: defaultLogNCosets,
		},
		UseExtensionField: false,
	}
}
