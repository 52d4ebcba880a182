package trust

import "apptrust/internal/trust/models"

// Default identity table constants. Overridable through configuration; the
// table itself is fixed for the process lifetime.
const (
	PackagePrimary           = "com.android.vending"
	PackageSecondary         = "com.google.android.gms"
	PackageServicesFramework = "com.google.android.gsf"

	// SharedUserID is the shared identity group the services core and the
	// services framework ship with.
	SharedUserID = "com.google.uid.shared"

	// SigningFingerprint is the publisher certificate fingerprint shared by
	// all three known packages.
	SigningFingerprint = "38918a453d07199354f8b19af05ec6562ced5788"
)

// DefaultIdentityTable returns the built-in known identity table. The store
// front-end carries no shared identity group, so only its certificate gates
// it; the other two are additionally gated by the shared group.
func DefaultIdentityTable() models.IdentityTable {
	return IdentityTableWithFingerprint(SigningFingerprint)
}

// IdentityTableWithFingerprint builds the known identity table expecting a
// custom publisher fingerprint. Used by test deployments signed with a
// different certificate.
func IdentityTableWithFingerprint(fingerprint string) models.IdentityTable {
	return models.IdentityTable{
		{
			PackageName:         PackagePrimary,
			Kind:                models.IdentityPrimary,
			ExpectedFingerprint: fingerprint,
		},
		{
			PackageName:          PackageSecondary,
			Kind:                 models.IdentitySecondary,
			RequiredSharedUserID: SharedUserID,
			ExpectedFingerprint:  fingerprint,
		},
		{
			PackageName:          PackageServicesFramework,
			Kind:                 models.IdentityServicesFramework,
			RequiredSharedUserID: SharedUserID,
			ExpectedFingerprint:  fingerprint,
		},
	}
}
