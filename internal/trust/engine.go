package trust

import "apptrust/internal/trust/models"

// MatchesFingerprint reports whether any of the signatures equals the
// expected fingerprint. Exact string comparison only: the platform already
// verified the signature chain, this just identifies which known key signed
// the app. Permutation of the signature set never changes the result.
func MatchesFingerprint(signatures []string, expected string) bool {
	for _, sig := range signatures {
		if sig == expected {
			return true
		}
	}
	return false
}

// EvaluateIdentity resolves a descriptor against the identity table.
// This is pure domain logic - no I/O, no side effects.
// Rule priority (fail-fast):
//  1. Privileged installs are already trusted by the platform and must
//     never receive compatibility treatment.
//  2. The package must be in the known identity table.
//  3. A required shared identity group must match exactly; a same-named
//     impostor cannot forge the group after install.
//  4. A current signature must match the expected fingerprint, or
//  5. a historical signature must match it (publisher certificate rotation).
//
// Returns IdentityUnknown when any gate fails.
func EvaluateIdentity(descriptor models.AppDescriptor, table models.IdentityTable) models.IdentityKind {
	// Rule 1: privileged installs are out of scope, regardless of identity.
	if descriptor.Privileged {
		return models.IdentityUnknown
	}

	// Rule 2: package must be a known identity.
	entry := table.Find(descriptor.PackageName)
	if entry == nil {
		return models.IdentityUnknown
	}

	// Rule 3: shared identity group gate.
	if entry.RequiredSharedUserID != "" && entry.RequiredSharedUserID != descriptor.SharedUserID {
		return models.IdentityUnknown
	}

	// Rule 4: current certificate.
	if MatchesFingerprint(descriptor.Signatures, entry.ExpectedFingerprint) {
		return entry.Kind
	}

	// Rule 5: rotation fallback against the signing history.
	if MatchesFingerprint(descriptor.PastSignatures, entry.ExpectedFingerprint) {
		return entry.Kind
	}

	return models.IdentityUnknown
}

// IsKnownIdentity reports the boolean verdict; callers that branch on which
// identity matched use EvaluateIdentity directly.
func IsKnownIdentity(descriptor models.AppDescriptor, table models.IdentityTable) bool {
	return EvaluateIdentity(descriptor, table).Known()
}
