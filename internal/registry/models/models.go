package models

import "time"

// PackageRecord is the package index entry for one installed application.
// The identity material mirrors what the platform package manager records at
// install time.
type PackageRecord struct {
	PackageName string
	// Signatures holds current signing certificate fingerprints.
	Signatures []string
	// PastSignatures holds the signing certificate history, oldest first.
	PastSignatures []string
	Privileged     bool
	// SharedUserID is committed at first install and cannot change across
	// upgrades; "" when the app declares none.
	SharedUserID string
	// GrantedPermissions lists permission names granted to the app.
	GrantedPermissions []string
	InstalledAt        time.Time
}

// HasPermission reports whether the record lists the permission as granted.
func (r *PackageRecord) HasPermission(name string) bool {
	for _, p := range r.GrantedPermissions {
		if p == name {
			return true
		}
	}
	return false
}
