package integration_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stonerunner "github.com/cairokit/stone-runner/pkg/stone-runner"
)

// checkedEngineScript imitates the real engine's CLI contract: it parses
// exactly the five named flags, verifies every input file exists, checks
// the private input points at a readable memory file, and writes a proof
// document with extra fields the runner must ignore.
const checkedEngineScript = `#!/bin/sh
out=""; pub=""; priv=""; cfg=""; par=""
while [ $# -gt 0 ]; do
	case "$1" in
		--out-file) out="$2"; shift 2;;
		--public-input-file) pub="$2"; shift 2;;
		--private-input-file) priv="$2"; shift 2;;
		--prover-config-file) cfg="$2"; shift 2;;
		--parameter-file) par="$2"; shift 2;;
		*) echo "unexpected flag $1" >&2; exit 64;;
	esac
done
for f in "$pub" "$priv" "$cfg" "$par"; do
	[ -n "$f" ] && [ -f "$f" ] || { echo "missing input file $f" >&2; exit 65; }
done
mem=$(sed -n 's/.*"memory_path":"\([^"]*\)".*/\1/p' "$priv")
[ -f "$mem" ] || { echo "private input references missing memory file" >&2; exit 66; }
[ -n "$out" ] || { echo "no out file" >&2; exit 67; }
printf '%s' '{"proof_hex":"0xdeadbeef","proof_parameters":{"field":"PrimeField0"}}' > "$out"
`

func installStubEngine(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, stonerunner.DefaultBinary)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to install stub engine: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func fibonacciPublicInput() *stonerunner.PublicInput {
	return &stonerunner.PublicInput{
		Layout: stonerunner.LayoutSmall,
		RcMin:  32762,
		RcMax:  32769,
		NSteps: 512,
		MemorySegments: stonerunner.MemorySegments{
			Program:    stonerunner.MemorySegment{BeginAddr: 1, StopPtr: 5},
			Execution:  stonerunner.MemorySegment{BeginAddr: 21, StopPtr: 47},
			Output:     stonerunner.MemorySegment{BeginAddr: 47, StopPtr: 48},
			Pedersen:   stonerunner.MemorySegment{BeginAddr: 512, StopPtr: 512},
			RangeCheck: stonerunner.MemorySegment{BeginAddr: 1024, StopPtr: 1024},
			Ecdsa:      stonerunner.MemorySegment{BeginAddr: 1280, StopPtr: 1280},
		},
		PublicMemory: []stonerunner.MemorySlot{
			{Address: 1, Value: "0x480680017fff8000", Page: 0},
		},
	}
}

// Test01_ProveFlow tests the complete flow against a stub engine that
// enforces the real CLI contract:
// 1. Materialize the working set
// 2. Invoke the engine with the five named flags
// 3. Decode the proof it wrote
func Test01_ProveFlow(t *testing.T) {
	t.Log("=== Test 01: prepare -> invoke -> decode ===")
	installStubEngine(t, checkedEngineScript)

	memory := []byte{0x01, 0x02, 0x03, 0x04}
	trace := []byte{0x05, 0x06}
	config := stonerunner.DefaultProverConfig()
	parameters := stonerunner.ProverParametersFromSteps(512)

	t.Log("Step 1: blocking run...")
	proof, err := stonerunner.Run(fibonacciPublicInput(), memory, trace, config, parameters)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if proof.ProofHex != "0xdeadbeef" {
		t.Fatalf("proof_hex = %q, expected 0xdeadbeef", proof.ProofHex)
	}

	t.Log("Step 2: context run...")
	proofCtx, err := stonerunner.RunContext(context.Background(), fibonacciPublicInput(), memory, trace, config, parameters)
	if err != nil {
		t.Fatalf("RunContext failed: %v", err)
	}

	t.Log("Step 3: both modes must produce identical proofs")
	if proof.ProofHex != proofCtx.ProofHex {
		t.Errorf("Run and RunContext disagree: %q vs %q", proof.ProofHex, proofCtx.ProofHex)
	}
}

// Test02_FailureDiagnostics tests the error taxonomy end to end
func Test02_FailureDiagnostics(t *testing.T) {
	memory := []byte{0x01}
	trace := []byte{0x02}
	config := stonerunner.DefaultProverConfig()
	parameters := stonerunner.ProverParametersFromSteps(512)

	t.Run("EngineMissing", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		_, err := stonerunner.Run(fibonacciPublicInput(), memory, trace, config, parameters)
		if !errors.Is(err, &stonerunner.ProverError{Code: stonerunner.ErrSpawn}) {
			t.Errorf("expected ErrSpawn, got %v", err)
		}
	})

	t.Run("EngineRejectsInput", func(t *testing.T) {
		installStubEngine(t, "#!/bin/sh\necho 'bad input' >&2\nexit 1\n")
		_, err := stonerunner.Run(fibonacciPublicInput(), memory, trace, config, parameters)
		if !errors.Is(err, &stonerunner.ProverError{Code: stonerunner.ErrCommand}) {
			t.Fatalf("expected ErrCommand, got %v", err)
		}
		var perr *stonerunner.ProverError
		if !errors.As(err, &perr) {
			t.Fatalf("error %v is not a *ProverError", err)
		}
		if got := string(perr.Stderr); !strings.Contains(got, "bad input") {
			t.Errorf("stderr %q does not carry the engine's diagnostic", got)
		}
	})

	t.Run("EngineWritesGarbage", func(t *testing.T) {
		installStubEngine(t, "#!/bin/sh\nprintf 'garbage' > \"$2\"\n")
		_, err := stonerunner.Run(fibonacciPublicInput(), memory, trace, config, parameters)
		if !errors.Is(err, &stonerunner.ProverError{Code: stonerunner.ErrDecode}) {
			t.Errorf("expected ErrDecode, got %v", err)
		}
	})
}

// Test03_NoWorkingDirectorySurvives tests that the temporary directory is
// reclaimed after success and after every failure class
func Test03_NoWorkingDirectorySurvives(t *testing.T) {
	scripts := map[string]string{
		"success": checkedEngineScript,
		"failure": "#!/bin/sh\nexit 1\n",
		"garbage": "#!/bin/sh\nprintf 'garbage' > \"$2\"\n",
	}

	for name, script := range scripts {
		t.Run(name, func(t *testing.T) {
			tmp := t.TempDir()
			t.Setenv("TMPDIR", tmp)
			installStubEngine(t, script)

			_, _ = stonerunner.Run(fibonacciPublicInput(), []byte{0x01}, []byte{0x02},
				stonerunner.DefaultProverConfig(), stonerunner.ProverParametersFromSteps(512))

			entries, err := os.ReadDir(tmp)
			if err != nil {
				t.Fatalf("Reading TMPDIR failed: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("working directories leaked: %v", entries)
			}
		})
	}
}
