package domain

// FlagKey identifies a settings flag
type FlagKey string

const (
	FlagAutoApprove        FlagKey = "autoApprove"
	FlagEmailNotifications FlagKey = "emailNotifications"
	FlagEmailReminder24h   FlagKey = "emailReminder24h"
	FlagSMSNotifications   FlagKey = "smsNotifications"
	FlagAllowSupportChat   FlagKey = "allowSupportChat"
	FlagDataSharing        FlagKey = "dataSharing"
)

// FlagOrder is the display order of the flags
var FlagOrder = []FlagKey{
	FlagAutoApprove,
	FlagEmailNotifications,
	FlagEmailReminder24h,
	FlagSMSNotifications,
	FlagAllowSupportChat,
	FlagDataSharing,
}

// FlagParents declares parent -> child dependencies. Static, not user-editable.
var FlagParents = map[FlagKey]FlagKey{
	FlagEmailReminder24h: FlagEmailNotifications,
}

// DefaultFlags is the fallback flag set used when stored settings cannot be loaded
func DefaultFlags() map[FlagKey]bool {
	return map[FlagKey]bool{
		FlagAutoApprove:        true,
		FlagEmailNotifications: true,
		FlagEmailReminder24h:   true,
		FlagSMSNotifications:   false,
		FlagAllowSupportChat:   true,
		FlagDataSharing:        false,
	}
}

// IsKnownFlag reports whether the key is declared
func IsKnownFlag(key FlagKey) bool {
	_, ok := DefaultFlags()[key]
	return ok
}
