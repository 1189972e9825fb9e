package models

import (
	"encoding/json"
	"testing"
)

// TestLayoutUnmarshal tests that exactly the documented tags decode
func TestLayoutUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Layout
		wantErr  bool
	}{
		{"plain", `"plain"`, LayoutPlain, false},
		{"small", `"small"`, LayoutSmall, false},
		{"dex", `"dex"`, LayoutDex, false},
		{"recursive", `"recursive"`, LayoutRecursive, false},
		{"starknet", `"starknet"`, LayoutStarknet, false},
		{"recursive_large_output", `"recursive_large_output"`, LayoutRecursiveLargeOutput, false},
		{"all_solidity", `"all_solidity"`, LayoutAllSolidity, false},
		{"starknet_with_keccak", `"starknet_with_keccak"`, LayoutStarknetWithKeccak, false},
		{"empty string", `""`, "", true},
		{"unknown tag", `"keccak"`, "", true},
		{"wrong case", `"Small"`, "", true},
		{"trailing space", `"plain "`, "", true},
		{"number", `5`, "", true},
		{"null", `null`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Layout
			err := json.Unmarshal([]byte(tt.input), &l)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Unmarshal(%s) succeeded as %q, expected error", tt.input, l)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if l != tt.expected {
				t.Errorf("Unmarshal(%s) = %q, expected %q", tt.input, l, tt.expected)
			}
		})
	}
}

// TestLayoutMarshal tests that layouts encode as their wire tags and that
// an invalid layout can never be encoded
func TestLayoutMarshal(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		expected string
		wantErr  bool
	}{
		{"plain", LayoutPlain, `"plain"`, false},
		{"starknet_with_keccak", LayoutStarknetWithKeccak, `"starknet_with_keccak"`, false},
		{"zero value", Layout(""), "", true},
		{"unknown", Layout("huge"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.layout)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Marshal(%q) = %s, expected error", tt.layout, data)
				}
				return
			}
			if err != nil {
				t.Fatalf("Marshal(%q) failed: %v", tt.layout, err)
			}
			if string(data) != tt.expected {
				t.Errorf("Marshal(%q) = %s, expected %s", tt.layout, data, tt.expected)
			}
		})
	}
}
