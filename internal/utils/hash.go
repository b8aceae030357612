package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// HashedIPLength is the number of hex characters kept from a hashed client
// address. 128 bits is plenty for bucketing and keeps the rate-limit table
// columns narrow.
const HashedIPLength = 32

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers.
// Each hasher in the pool is configured with the provided hash key.
//
// Purpose:
//   - Avoid repeated allocations of new hash.Hash instances
//   - Reduce GC pressure on the per-request rate-limit path
//
// Parameters:
//
//	hashKey - key used for all HMAC operations
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-salt")
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over the given byte slice
// using a hasher pulled from the global hasher pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Parameters:
//
//	data - arbitrary byte slice to be hashed
//
// Returns:
//
//	[]byte - HMAC-SHA256 digest
//
// Example usage:
//
//	digest := utils.Hash([]byte("203.0.113.7"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashIP derives the anonymized identifier stored in place of a client
// address: the pooled HMAC-SHA256 digest of the address, hex-encoded and
// truncated to HashedIPLength characters. Raw addresses never reach logs
// or the database; rate limiting buckets on this value instead.
//
// InitHasherPool must have been called with the deployment's IP hash salt.
//
// Parameters:
//
//	ip - client address as reported by the transport (host part only)
//
// Returns:
//
//	string - 32 hex characters identifying the address within one deployment
func HashIP(ip string) string {
	return hex.EncodeToString(Hash([]byte(ip)))[:HashedIPLength]
}
