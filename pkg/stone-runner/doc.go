// Package stonerunner invokes the Stone STARK prover engine as a child
// process and returns its proof as a typed value.
//
// The engine is a separately-built program (cpu_air_prover). This package
// never reimplements any of its math: it owns the on-disk protocol only.
// Each run serializes the public input, prover configuration, prover
// parameters, and the raw memory/trace blobs into an isolated temporary
// directory, derives the private input descriptor referencing those
// blobs, invokes the engine against the directory, and decodes the proof
// file it writes. The directory is removed before the call returns, on
// every path.
//
// # Quick Start
//
// Proving one program execution:
//
//	proof, err := stonerunner.Run(publicInput, memory, trace,
//		stonerunner.DefaultProverConfig(),
//		stonerunner.ProverParametersFromSteps(512))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(proof.ProofHex)
//
// Cooperating with a scheduler, or bounding the engine's lifetime:
//
//	proof, err := stonerunner.RunContext(ctx, publicInput, memory, trace, config, parameters)
//
// Run and RunContext write the same files, pass the same flags, and map
// outcomes to the same errors; RunContext additionally kills the engine
// when ctx is cancelled.
//
// # Errors
//
// Every failure is a *ProverError carrying an ErrorCode:
//
//   - ErrIO: the working directory or one of its files could not be written
//   - ErrSpawn: the engine binary could not be started at all
//   - ErrCommand: the engine ran and exited non-zero; the exit code,
//     stdout and stderr are captured on the error
//   - ErrDecode: the proof file is missing or not valid proof JSON
//
// Nothing is retried internally; the caller decides.
//
// # Architecture
//
//   - pkg/stone-runner/: public API (this package)
//   - internal/stone-runner/: private implementation (not importable)
//
// Implementation details in internal/ can be refactored without breaking
// the public API.
package stonerunner
