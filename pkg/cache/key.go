package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Key derives a stable cache key from a connector scope and an identifier.
// The scope is the connector name; the identifier is typically a stringified
// request URI (fallback cache) or a caller-supplied name (object cache).
//
// The key is the scope followed by the hex-encoded xxhash64 of
// "<scope>__<identifier>". Keeping the scope in clear text makes keys
// greppable in Redis while the hash keeps them short and uniform regardless
// of identifier length.
func Key(scope, identifier string) string {
	sum := xxhash.Sum64String(scope + "__" + identifier)
	return fmt.Sprintf("%s:%016x", scope, sum)
}
