package models

// CachedLdeConfig controls how the engine caches low-degree extensions.
type CachedLdeConfig struct {
	StoreFullLde  bool `json:"store_full_lde"`
	UseFftForEval bool `json:"use_fft_for_eval"`
}

// ProverConfig carries the engine-agnostic tuning knobs of the prover.
// It is serialized verbatim to prover_config_file.json; none of the
// values are interpreted on this side of the process boundary.
type ProverConfig struct {
	CachedLdeConfig              CachedLdeConfig `json:"cached_lde_config"`
	ConstraintPolynomialTaskSize int             `json:"constraint_polynomial_task_size"`
	NOutOfMemoryMerkleLayers     int             `json:"n_out_of_memory_merkle_layers"`
	TableProverNTasksPerSegment  int             `json:"table_prover_n_tasks_per_segment"`
}

// DefaultProverConfig returns the configuration shipped with the engine's
// own examples. It is a reasonable starting point for any program.
func DefaultProverConfig() *ProverConfig {
	return &ProverConfig{
		CachedLdeConfig: CachedLdeConfig{
			StoreFullLde:  false,
			UseFftForEval: false,
		},
		ConstraintPolynomialTaskSize: 256,
		NOutOfMemoryMerkleLayers:     1,
		TableProverNTasksPerSegment:  32,
	}
}
