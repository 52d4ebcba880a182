package models

// AppDescriptor is an immutable snapshot of an installed application's
// identity material, fetched fresh from the package registry per evaluation.
type AppDescriptor struct {
	PackageName string
	// Signatures holds the current signing certificate fingerprints.
	Signatures []string
	// PastSignatures holds the signing certificate history; nil when the
	// lookup did not request history or the platform recorded none.
	PastSignatures []string
	// Privileged marks platform-trusted installs. Privileged apps never
	// receive compatibility treatment.
	Privileged bool
	// SharedUserID is the publisher-declared shared identity group,
	// committed at first install; "" when the app declares none.
	SharedUserID string
}

// IdentityKind tags which known identity a descriptor resolved to. Resolved
// once per descriptor instead of repeated package-name comparisons.
type IdentityKind int

const (
	IdentityUnknown IdentityKind = iota
	// IdentityPrimary is the application store front-end.
	IdentityPrimary
	// IdentitySecondary is the services core the store depends on.
	IdentitySecondary
	// IdentityServicesFramework is the legacy services framework shipped
	// alongside the services core.
	IdentityServicesFramework
)

func (k IdentityKind) String() string {
	switch k {
	case IdentityPrimary:
		return "primary"
	case IdentitySecondary:
		return "secondary"
	case IdentityServicesFramework:
		return "services_framework"
	default:
		return "unknown"
	}
}

// Known reports whether the kind names one of the known identities.
func (k IdentityKind) Known() bool {
	return k != IdentityUnknown
}

// KnownIdentity is one entry of the fixed identity table.
type KnownIdentity struct {
	PackageName string
	Kind        IdentityKind
	// RequiredSharedUserID must match the descriptor's shared identity
	// group exactly when non-empty. Package names are attacker-controllable
	// at install time; the shared identity group is not, so it defends
	// against a same-named impostor.
	RequiredSharedUserID string
	ExpectedFingerprint  string
}

// IdentityTable is the fixed set of known identities. Configured once,
// never mutated at runtime.
type IdentityTable []KnownIdentity

// Find returns the entry for the package name, or nil when the package is
// not a known identity.
func (t IdentityTable) Find(packageName string) *KnownIdentity {
	for i := range t {
		if t[i].PackageName == packageName {
			return &t[i]
		}
	}
	return nil
}

// SessionState is the process-wide trust snapshot, written exactly once
// during startup and immutable thereafter.
type SessionState struct {
	Enabled  bool
	Identity IdentityKind
	// Package is the process's own package name the state was derived from.
	Package string
}
