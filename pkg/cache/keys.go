package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/forester-bio/forester/pkg/table"
)

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// SolveKey derives a cache key for a solver run from its three inputs. The
// tables are hashed in their TSV form and the parameters in canonical JSON
// (map keys sorted), so equal inputs always produce the same key.
func SolveKey(network, prizes *table.Table, params map[string]any) (string, error) {
	h := sha256.New()
	if err := network.Write(h, '\t'); err != nil {
		return "", err
	}
	h.Write([]byte{0})
	if err := prizes.Write(h, '\t'); err != nil {
		return "", err
	}
	h.Write([]byte{0})
	p, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	h.Write(p)
	return "solve:" + hex.EncodeToString(h.Sum(nil)), nil
}
