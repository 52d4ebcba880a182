package adapters

import "apptrust/internal/trust/ports"

// StaticProcessIdentity answers the process classification from configuration.
// The platform decides the kind before launch; it never changes at runtime.
type StaticProcessIdentity struct {
	application bool
}

func NewStaticProcessIdentity(kind string) ports.ProcessIdentity {
	return &StaticProcessIdentity{application: kind == "application"}
}

func (p *StaticProcessIdentity) IsApplicationProcess() bool {
	return p.application
}
