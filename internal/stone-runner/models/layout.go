package models

import (
	"encoding/json"
	"fmt"
)

// Layout identifies the memory/segment arrangement profile of the Cairo
// program being proved. The engine only accepts the tags listed below,
// verbatim.
type Layout string

const (
	LayoutPlain                Layout = "plain"
	LayoutSmall                Layout = "small"
	LayoutDex                  Layout = "dex"
	LayoutRecursive            Layout = "recursive"
	LayoutStarknet             Layout = "starknet"
	LayoutRecursiveLargeOutput Layout = "recursive_large_output"
	LayoutAllSolidity          Layout = "all_solidity"
	LayoutStarknetWithKeccak   Layout = "starknet_with_keccak"
)

// Valid reports whether l is one of the layouts known to the engine.
func (l Layout) Valid() bool {
	switch l {
	case LayoutPlain, LayoutSmall, LayoutDex, LayoutRecursive,
		LayoutStarknet, LayoutRecursiveLargeOutput,
		LayoutAllSolidity, LayoutStarknetWithKeccak:
		return true
	}
	return false
}

// String returns the wire tag of the layout.
func (l Layout) String() string {
	return string(l)
}

// MarshalJSON encodes the layout as its wire tag. Unknown layouts are
// rejected so an invalid value can never reach the engine.
func (l Layout) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unknown layout %q", string(l))
	}
	return json.Marshal(string(l))
}

// UnmarshalJSON decodes a layout tag, rejecting anything outside the
// closed set of engine layouts.
func (l *Layout) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	candidate := Layout(tag)
	if !candidate.Valid() {
		return fmt.Errorf("unknown layout %q", tag)
	}
	*l = candidate
	return nil
}
