package models

// PrivateInput is the prover-only half of the engine's input contract.
// It references the memory and trace files by path; the engine reads them
// from disk, so the paths must stay valid for the lifetime of the run.
//
// The pedersen, range_check and ecdsa sequences are part of the engine's
// schema but carry no data in any observed invocation. They are kept as
// opaque integers and always serialized as [] rather than null.
type PrivateInput struct {
	MemoryPath string   `json:"memory_path"`
	TracePath  string   `json:"trace_path"`
	Pedersen   []uint32 `json:"pedersen"`
	RangeCheck []uint32 `json:"range_check"`
	Ecdsa      []uint32 `json:"ecdsa"`
}

// NewPrivateInput builds a private input referencing the given memory and
// trace files, with the placeholder sequences empty.
func NewPrivateInput(memoryPath, tracePath string) *PrivateInput {
	return &PrivateInput{
		MemoryPath: memoryPath,
		TracePath:  tracePath,
		Pedersen:   []uint32{},
		RangeCheck: []uint32{},
		Ecdsa:      []uint32{},
	}
}
