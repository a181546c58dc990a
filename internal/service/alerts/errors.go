package alerts

import "errors"

var (
	// ErrAccessDenied возвращается, когда журнал запрашивает не администратор
	ErrAccessDenied = errors.New("alerts: access denied")
)
