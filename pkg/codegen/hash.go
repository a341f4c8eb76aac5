package codegen

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSchema returns the hex SHA256 of the schema text. Output is a pure
// function of input, so this hash doubles as a fingerprint of the generated
// artifacts for change detection.
func HashSchema(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
