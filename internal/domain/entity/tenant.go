// Package entity contains the core business objects of the project.
package entity

// TenantScope identifies the tenant a piece of cached or derived data belongs
// to. Any cached business data whose scope does not match the authenticated
// session's tenant must be discarded before display.
type TenantScope struct {
	TenantID string `json:"tenant_id"` // The tenant identifier the data is scoped to.
}
