package models

// Proof is the decoded engine output. The engine writes a richer document
// (it echoes the proof parameters and public input among other fields);
// only the serialized proof payload is mapped here, and unknown fields
// are ignored on decode so newer engine versions keep working.
type Proof struct {
	ProofHex string `json:"proof_hex"`
}
