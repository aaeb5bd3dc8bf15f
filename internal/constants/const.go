package constants

import "time"

const (
	StatusActive   = "Activo"
	StatusInactive = "Inactivo"
)

const (
	MovementDebit  = "DB"
	MovementCredit = "CR"
)

const (
	DefaultSessionTTL          = 8 * time.Hour
	DefaultAccountingRateLimit = 5
	DefaultAccountingTimeout   = 10 * time.Second
	MinSessionSecretLen        = 32
	MinPasswordLen             = 8
	IdentityNumberLen          = 11
	SessionCookieName          = "session"
)
