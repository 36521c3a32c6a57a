package resolver

import "context"

// Resolver maps one exercise identifier to an image location using one
// external provider.
//
// Resolve never fails from the caller's perspective: every degraded path
// (missing mapping, transport error, unwritable disk) terminates in a
// defined value. An empty string means "no image available".
type Resolver interface {
	// Lookup returns the cached answer for identifier without performing
	// any remote work. The second return is false when the identifier has
	// no usable cache entry and needs a full resolution. Note that
	// ("", true) is a valid answer: a cached negative outcome.
	Lookup(identifier string) (string, bool)

	// Resolve returns the current location for identifier, consulting the
	// cache first and falling back to the provider.
	Resolve(ctx context.Context, identifier string) string

	Name() string
}
