package msgsource

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent computes the SHA-256 hash of catalog file content.
func HashContent(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashCatalog hashes the canonical file form of c. Two catalogs with the
// same entries in the same order hash equally.
func HashCatalog(c *Catalog) string {
	return HashContent(Marshal(c))
}
