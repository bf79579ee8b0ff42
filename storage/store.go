package storage

// Fallback bucket keys, one per entity type. Each bucket holds a
// JSON-encoded array of that entity.
const (
	BucketProperties = "properties"
	BucketUnits      = "units"
	BucketTenants    = "tenants"
	BucketLeases     = "leases"
	BucketUsers      = "users"
)

// Buckets lists every entity bucket in snapshot order.
var Buckets = []string{BucketProperties, BucketUnits, BucketTenants, BucketLeases, BucketUsers}

// FallbackStore is the durable local key-value store the data layer
// degrades to when the remote API is unreachable. ReadBucket returns
// nil with no error for an absent bucket.
type FallbackStore interface {
	ReadBucket(bucket string) ([]byte, error)
	WriteBucket(bucket string, payload []byte) error
	Close() error
}
