package service

// AttributeStore is the process-wide cache of tenant-scoped display
// attributes (business name, subscription plan, profile echoes). It replaces
// the historical free-for-all global cache object: namespaces have a single
// declared writer, and the tenant-isolation guard invalidates a namespace
// wholesale when its tenant no longer matches the session.
type AttributeStore interface {
	// Claim registers owner as the sole writer of a namespace. Claiming an
	// already-claimed namespace with a different owner fails.
	Claim(namespace, owner string) error

	// Put writes a key into a namespace. Only the claimed owner may write.
	Put(namespace, owner, key string, value any) error

	// Get reads a single key from a namespace.
	Get(namespace, key string) (any, bool)

	// Snapshot returns a copy of all attributes in a namespace.
	Snapshot(namespace string) map[string]any

	// Invalidate drops every attribute in a namespace. Ownership claims survive.
	Invalidate(namespace string)
}
