package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// DefaultBinary is the name the engine installs under. It is resolved
// through PATH unless the caller points at an explicit location.
const DefaultBinary = "cpu_air_prover"

// invoke runs the engine against a prepared working set and classifies
// the outcome. Both the blocking and the context-aware entry points go
// through this single routine, so the flag contract and the error mapping
// cannot drift between them.
//
// Cancelling ctx kills the engine process; the resulting failure is
// classified as a command error with the context error as its cause.
//
// Success is determined solely by the exit status. Stdout and stderr are
// captured verbatim and never interpreted; the engine's output format is
// not a stable contract.
func invoke(ctx context.Context, binary string, w *workingSet) *ProverError {
	cmd := exec.CommandContext(ctx, binary,
		"--out-file", w.proofFile,
		"--public-input-file", w.publicInputFile,
		"--private-input-file", w.privateInputFile,
		"--prover-config-file", w.proverConfigFile,
		"--parameter-file", w.parameterFile,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Bounds the wait for the output pipes once the engine is gone, so a
	// grandchild inheriting them cannot stall a cancelled run forever.
	cmd.WaitDelay = 10 * time.Second

	if err := cmd.Start(); err != nil {
		return spawnError("failed to start "+binary, err)
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return commandError(exitErr.ExitCode(), stdout.Bytes(), stderr.Bytes(), ctx.Err())
	}
	return spawnError("engine run failed", err)
}
