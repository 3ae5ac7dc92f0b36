package htable

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Hash computes the 64-bit FNV-1a hash of key
func Hash(key string) uint64 {
	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}

// bucket maps hash onto a slot index. capacity must be a power of two.
func bucket(hash uint64, capacity int) int {
	return int(hash & uint64(capacity-1))
}
