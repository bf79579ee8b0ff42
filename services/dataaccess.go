package services

import (
	"context"
	"encoding/json"
	"log"

	"propdesk/models"
	"propdesk/storage"
)

// DataService is the data-access layer between the console and its
// persisted state. Every read makes exactly one attempt against the
// remote API and degrades to the local fallback store on any failure,
// so list and detail pages always have something to render. Writes go
// to the remote only; a failed write surfaces as a NetworkError rather
// than silently landing in the local store.
//
// The two stores are never reconciled here. Fallback reads do not
// repopulate the remote, and remote reads do not refresh the fallback;
// warming the fallback is SnapshotService's job.
type DataService struct {
	remote *storage.RemoteStore
	local  storage.FallbackStore
	strict bool
}

// NewDataService wires the layer. With strict set, by-id lookups that
// miss both stores return a NotFoundError instead of a synthetic
// placeholder record.
func NewDataService(remote *storage.RemoteStore, local storage.FallbackStore, strict bool) *DataService {
	return &DataService{
		remote: remote,
		local:  local,
		strict: strict,
	}
}

// getCollection reads an entity collection: remote first, local bucket
// on failure, empty slice when neither store has anything. Collection
// reads never fail.
func getCollection[T any](ctx context.Context, s *DataService, bucket string) []T {
	var out []T
	err := s.remote.GetJSON(ctx, s.remote.CollectionURL(bucket), &out)
	if err == nil {
		if out == nil {
			out = []T{}
		}
		return out
	}
	log.Printf("Remote %s unavailable, serving fallback: %v", bucket, err)

	return readBucket[T](s.local, bucket)
}

func readBucket[T any](local storage.FallbackStore, bucket string) []T {
	data, err := local.ReadBucket(bucket)
	if err != nil {
		log.Printf("Fallback read %s: %v", bucket, err)
		return []T{}
	}
	if data == nil {
		return []T{}
	}

	var cached []T
	if err := json.Unmarshal(data, &cached); err != nil {
		log.Printf("Fallback bucket %s is corrupt: %v", bucket, err)
		return []T{}
	}
	if cached == nil {
		cached = []T{}
	}
	return cached
}

// getByID reads a single entity: remote first, then a scan of the local
// bucket, then the entity's synthetic default record (or NotFoundError
// in strict mode).
func getByID[T any](ctx context.Context, s *DataService, bucket, id string, key func(*T) string, placeholder func() T) (T, error) {
	var out T
	err := s.remote.GetJSON(ctx, s.remote.ItemURL(bucket, id), &out)
	if err == nil {
		return out, nil
	}
	log.Printf("Remote %s/%s unavailable, serving fallback: %v", bucket, id, err)

	for _, item := range readBucket[T](s.local, bucket) {
		if key(&item) == id {
			return item, nil
		}
	}

	if s.strict {
		var zero T
		return zero, &storage.NotFoundError{Bucket: bucket, ID: id}
	}
	return placeholder(), nil
}

// PROPERTIES

func (s *DataService) GetProperties(ctx context.Context) []models.Property {
	return getCollection[models.Property](ctx, s, storage.BucketProperties)
}

func (s *DataService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	return getByID(ctx, s, storage.BucketProperties, id,
		func(p *models.Property) string { return p.ID },
		models.DefaultProperty)
}

func (s *DataService) CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error) {
	if err := property.Validate(); err != nil {
		return nil, err
	}

	var created models.Property
	url := s.remote.CollectionURL(storage.BucketProperties)
	if err := s.remote.PostJSON(ctx, url, property, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DataService) UpdateProperty(ctx context.Context, id string, patch *models.PropertyPatch) (*models.Property, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated models.Property
	url := s.remote.ItemURL(storage.BucketProperties, id)
	if err := s.remote.PutJSON(ctx, url, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *DataService) DeleteProperty(ctx context.Context, id string) error {
	return s.remote.Delete(ctx, s.remote.ItemURL(storage.BucketProperties, id))
}

// UNITS

func (s *DataService) GetUnits(ctx context.Context) []models.Unit {
	return getCollection[models.Unit](ctx, s, storage.BucketUnits)
}

func (s *DataService) GetUnit(ctx context.Context, id string) (models.Unit, error) {
	return getByID(ctx, s, storage.BucketUnits, id,
		func(u *models.Unit) string { return u.ID },
		models.DefaultUnit)
}

// TENANTS

func (s *DataService) GetTenants(ctx context.Context) []models.Tenant {
	return getCollection[models.Tenant](ctx, s, storage.BucketTenants)
}

func (s *DataService) GetTenant(ctx context.Context, id string) (models.Tenant, error) {
	return getByID(ctx, s, storage.BucketTenants, id,
		func(t *models.Tenant) string { return t.ID },
		models.DefaultTenant)
}

func (s *DataService) CreateTenant(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {
	if err := tenant.Validate(); err != nil {
		return nil, err
	}

	var created models.Tenant
	url := s.remote.CollectionURL(storage.BucketTenants)
	if err := s.remote.PostJSON(ctx, url, tenant, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DataService) UpdateTenant(ctx context.Context, id string, patch *models.TenantPatch) (*models.Tenant, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated models.Tenant
	url := s.remote.ItemURL(storage.BucketTenants, id)
	if err := s.remote.PutJSON(ctx, url, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *DataService) DeleteTenant(ctx context.Context, id string) error {
	return s.remote.Delete(ctx, s.remote.ItemURL(storage.BucketTenants, id))
}

// LEASES

func (s *DataService) GetLeases(ctx context.Context) []models.Lease {
	return getCollection[models.Lease](ctx, s, storage.BucketLeases)
}

func (s *DataService) CreateLease(ctx context.Context, lease *models.Lease) (*models.Lease, error) {
	if err := lease.Validate(); err != nil {
		return nil, err
	}

	var created models.Lease
	url := s.remote.CollectionURL(storage.BucketLeases)
	if err := s.remote.PostJSON(ctx, url, lease, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// USERS

func (s *DataService) GetUsers(ctx context.Context) []models.AppUser {
	return getCollection[models.AppUser](ctx, s, storage.BucketUsers)
}

func (s *DataService) UpdateUser(ctx context.Context, id string, patch *models.AppUserPatch) (*models.AppUser, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated models.AppUser
	url := s.remote.ItemURL(storage.BucketUsers, id)
	if err := s.remote.PutJSON(ctx, url, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
