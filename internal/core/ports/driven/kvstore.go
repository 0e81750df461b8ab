package driven

// KeyValueStore is best-effort persistence for search side-channel data
// (recent searches, analytics). The Try prefix makes the contract explicit:
// implementations never return errors to callers. A missing, unreadable or
// corrupt value reads as absent; a failed write is silently dropped after
// diagnostic logging. Nothing stored here may ever break a search.
type KeyValueStore interface {
	// TryGet returns the value for key and whether it was present.
	TryGet(key string) (string, bool)

	// TrySet stores value under key, reporting whether the write stuck.
	TrySet(key, value string) bool

	// TryDelete removes key if present.
	TryDelete(key string)

	// Close releases underlying resources.
	Close() error
}
