package storage

// Driver is the narrow object-storage contract the media layer consumes.
// Delete is idempotent: deleting an absent key is not an error.
type Driver interface {
	Put(key string, data []byte, contentType string) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	Exists(key string) bool
}
