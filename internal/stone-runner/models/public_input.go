package models

// MemorySegment is a half-open address range of one Cairo memory segment.
type MemorySegment struct {
	BeginAddr uint32 `json:"begin_addr"`
	StopPtr   uint32 `json:"stop_ptr"`
}

// MemorySegments names the six segments every layout exposes.
type MemorySegments struct {
	Program    MemorySegment `json:"program"`
	Execution  MemorySegment `json:"execution"`
	Output     MemorySegment `json:"output"`
	Pedersen   MemorySegment `json:"pedersen"`
	RangeCheck MemorySegment `json:"range_check"`
	Ecdsa      MemorySegment `json:"ecdsa"`
}

// MemorySlot is one public memory cell. The value is a hex string because
// field elements exceed native integer width; this layer never parses it.
type MemorySlot struct {
	Address uint32 `json:"address"`
	Value   string `json:"value"`
	Page    uint32 `json:"page"`
}

// PublicInput is the verifier-visible half of the engine's input contract.
// The range-check bounds and step count are engine-validated; this layer
// only serializes them.
//
// DynamicParams is nil for layouts without dynamic parameters. Both an
// omitted field and an explicit null decode to nil.
type PublicInput struct {
	Layout         Layout            `json:"layout"`
	RcMin          uint32            `json:"rc_min"`
	RcMax          uint32            `json:"rc_max"`
	NSteps         uint32            `json:"n_steps"`
	MemorySegments MemorySegments    `json:"memory_segments"`
	PublicMemory   []MemorySlot      `json:"public_memory"`
	DynamicParams  map[string]uint32 `json:"dynamic_params,omitempty"`
}
