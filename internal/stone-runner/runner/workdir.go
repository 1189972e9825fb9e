package runner

import (
	"os"
	"path/filepath"

	"github.com/cairokit/stone-runner/internal/stone-runner/logger"
	"github.com/cairokit/stone-runner/internal/stone-runner/models"
	"github.com/cairokit/stone-runner/internal/stone-runner/utils"
)

// Fixed filenames inside the working directory. The engine only sees the
// resolved paths, but keeping the names predictable makes a preserved
// directory easy to inspect by hand.
const (
	publicInputFilename  = "public_input.json"
	privateInputFilename = "private_input.json"
	proverConfigFilename = "prover_config_file.json"
	parameterFilename    = "parameters.json"
	memoryFilename       = "memory.bin"
	traceFilename        = "trace.bin"
	proofFilename        = "proof.json"
)

// workingSet is the collection of resolved file paths inside one
// invocation's temporary directory. It is the sole owner of the directory:
// it is created by prepare, passed by pointer, and removed by Close.
type workingSet struct {
	dir string

	publicInputFile  string
	privateInputFile string
	proverConfigFile string
	parameterFile    string
	proofFile        string
}

// Close removes the working directory and every file inside it. It is
// safe to call more than once.
func (w *workingSet) Close() error {
	if w.dir == "" {
		return nil
	}
	err := os.RemoveAll(w.dir)
	w.dir = ""
	return err
}

// prepare materializes every input file the engine needs inside a fresh
// temporary directory and returns the resulting working set.
//
// The private input is derived here rather than caller-supplied: it must
// reference the memory and trace files just written next to it. The
// returned working set also carries the path the engine will write the
// proof to; that file does not exist yet.
//
// On error no directory is leaked: whatever was created is removed before
// returning.
func prepare(publicInput *models.PublicInput, memory, trace []byte, config *models.ProverConfig, parameters *models.ProverParameters) (*workingSet, *ProverError) {
	dir, err := os.MkdirTemp("", "stone-runner-")
	if err != nil {
		return nil, ioError("failed to create working directory", err)
	}

	w := &workingSet{
		dir:              dir,
		publicInputFile:  filepath.Join(dir, publicInputFilename),
		privateInputFile: filepath.Join(dir, privateInputFilename),
		proverConfigFile: filepath.Join(dir, proverConfigFilename),
		parameterFile:    filepath.Join(dir, parameterFilename),
		proofFile:        filepath.Join(dir, proofFilename),
	}

	memoryFile := filepath.Join(dir, memoryFilename)
	traceFile := filepath.Join(dir, traceFilename)

	if err := utils.WriteJSONFile(w.publicInputFile, publicInput); err != nil {
		_ = w.Close()
		return nil, ioError("failed to write public input", err)
	}
	if err := utils.WriteJSONFile(w.proverConfigFile, config); err != nil {
		_ = w.Close()
		return nil, ioError("failed to write prover config", err)
	}
	if err := utils.WriteJSONFile(w.parameterFile, parameters); err != nil {
		_ = w.Close()
		return nil, ioError("failed to write prover parameters", err)
	}

	if err := os.WriteFile(memoryFile, memory, 0o644); err != nil {
		_ = w.Close()
		return nil, ioError("failed to write memory file", err)
	}
	if err := os.WriteFile(traceFile, trace, 0o644); err != nil {
		_ = w.Close()
		return nil, ioError("failed to write trace file", err)
	}

	privateInput := models.NewPrivateInput(memoryFile, traceFile)
	if err := utils.WriteJSONFile(w.privateInputFile, privateInput); err != nil {
		_ = w.Close()
		return nil, ioError("failed to write private input", err)
	}

	log := logger.Logger()
	log.Debug().
		Str("dir", dir).
		Str("memory_digest", utils.Keccak256Hex(memory)).
		Str("trace_digest", utils.Keccak256Hex(trace)).
		Msg("prepared prover working directory")

	return w, nil
}
