// Package objcache provides a two-tier cache for arbitrary derived values.
//
// The first tier is an in-process LRU; the second is a persistent tagged
// store (Redis). Reads populate the in-process tier from the store, including
// an explicit not-found marker so repeated lookups of an absent key don't hit
// the store again. Writes go through to the store before the in-process tier
// is updated, so a successful SetItem always means the durable state changed.
//
// Values are serialized to JSON for the persistent tier, so the value type
// has to be JSON-serializable.
package objcache
