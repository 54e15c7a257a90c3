package scope

import "time"

const (
	DefaultTTL = 24 * time.Hour
	Issuer     = "hr-agent-system"
)
