// Package runner orchestrates invocations of the external proof engine:
// it owns the on-disk protocol handing inputs to the engine and reads the
// proof artifact back.
//
// One invocation is one unit of work: a fresh temporary directory, one
// child process, one proof file. Concurrent invocations never share
// state, so no locking is needed anywhere in this package.
package runner

import (
	"context"
	"time"

	"github.com/cairokit/stone-runner/internal/stone-runner/logger"
	"github.com/cairokit/stone-runner/internal/stone-runner/models"
	"github.com/cairokit/stone-runner/internal/stone-runner/utils"
)

// Run executes the engine on one program execution: it materializes the
// inputs in a working directory, invokes the binary, and decodes the
// proof it wrote. The working directory is removed before Run returns,
// whether it succeeds or fails.
//
// The caller controls blocking semantics through ctx: context.Background
// waits for the engine unconditionally, a cancellable context kills the
// engine when cancelled.
func Run(ctx context.Context, binary string, publicInput *models.PublicInput, memory, trace []byte, config *models.ProverConfig, parameters *models.ProverParameters) (*models.Proof, error) {
	w, perr := prepare(publicInput, memory, trace, config, parameters)
	if perr != nil {
		return nil, perr
	}
	defer func() { _ = w.Close() }()

	log := logger.Logger().With().Str("binary", binary).Logger()

	start := time.Now()
	if perr := invoke(ctx, binary, w); perr != nil {
		log.Debug().Err(perr).Dur("took", time.Since(start)).Msg("engine run failed")
		return nil, perr
	}
	log.Debug().Dur("took", time.Since(start)).Msg("engine run succeeded")

	proof, perr := readProof(w.proofFile)
	if perr != nil {
		return nil, perr
	}
	return proof, nil
}

// readProof decodes the proof file the engine wrote. A missing or
// unreadable file and invalid JSON are all decode failures: either the
// engine misreported success or its output schema is incompatible.
func readProof(path string) (*models.Proof, *ProverError) {
	var proof models.Proof
	if err := utils.ReadJSONFile(path, &proof); err != nil {
		return nil, decodeError("failed to load proof", err)
	}
	return &proof, nil
}
