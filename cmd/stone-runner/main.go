// Command stone-runner proves a Cairo program execution with the Stone
// engine from the command line. It reads the public input, memory and
// trace produced by the program, runs cpu_air_prover against them, and
// writes the resulting proof JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cairokit/stone-runner/internal/stone-runner/logger"
	"github.com/cairokit/stone-runner/internal/stone-runner/utils"
	stonerunner "github.com/cairokit/stone-runner/pkg/stone-runner"
)

var rootCmd = &cobra.Command{
	Use:   "stone-runner",
	Short: "invoke the Stone STARK prover on a program execution",
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "generate a proof for the provided program execution",
	Run:   cmdProve,
}

var (
	fPublicInputPath string
	fMemoryPath      string
	fTracePath       string
	fConfigPath      string
	fParameterPath   string
	fProofPath       string
	fBinary          string
)

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.PersistentFlags().StringVar(&fPublicInputPath, "public-input", "", "path to the public input JSON")
	proveCmd.PersistentFlags().StringVar(&fMemoryPath, "memory", "", "path to the memory binary")
	proveCmd.PersistentFlags().StringVar(&fTracePath, "trace", "", "path to the trace binary")
	proveCmd.PersistentFlags().StringVar(&fConfigPath, "prover-config", "", "path to the prover config JSON -- default is the engine's standard config")
	proveCmd.PersistentFlags().StringVar(&fParameterPath, "parameters", "", "path to the prover parameters JSON -- default is derived from the step count")
	proveCmd.PersistentFlags().StringVar(&fProofPath, "out", "proof.json", "path the proof JSON is written to")
	proveCmd.PersistentFlags().StringVar(&fBinary, "binary", stonerunner.DefaultBinary, "engine executable, resolved through PATH when a bare name")
	_ = proveCmd.MarkPersistentFlagRequired("public-input")
	_ = proveCmd.MarkPersistentFlagRequired("memory")
	_ = proveCmd.MarkPersistentFlagRequired("trace")
}

func cmdProve(cmd *cobra.Command, args []string) {
	log := logger.Logger()

	var publicInput stonerunner.PublicInput
	if err := utils.ReadJSONFile(fPublicInputPath, &publicInput); err != nil {
		fatal(err)
	}

	memory, err := os.ReadFile(fMemoryPath)
	if err != nil {
		fatal(err)
	}
	trace, err := os.ReadFile(fTracePath)
	if err != nil {
		fatal(err)
	}

	config := stonerunner.DefaultProverConfig()
	if fConfigPath != "" {
		config = &stonerunner.ProverConfig{}
		if err := utils.ReadJSONFile(fConfigPath, config); err != nil {
			fatal(err)
		}
	}

	parameters := stonerunner.ProverParametersFromSteps(int(publicInput.NSteps))
	if fParameterPath != "" {
		parameters = &stonerunner.ProverParameters{}
		if err := utils.ReadJSONFile(fParameterPath, parameters); err != nil {
			fatal(err)
		}
	}

	log.Info().
		Str("layout", publicInput.Layout.String()).
		Uint32("n_steps", publicInput.NSteps).
		Str("binary", fBinary).
		Msg("proving program execution")

	proof, err := stonerunner.DefaultProver().WithBinary(fBinary).
		Run(&publicInput, memory, trace, config, parameters)
	if err != nil {
		fatal(err)
	}

	if err := utils.WriteJSONFile(fProofPath, proof); err != nil {
		fatal(err)
	}
	log.Info().Str("out", fProofPath).Msg("proof written")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(-1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
