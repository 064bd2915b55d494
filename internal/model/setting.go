package model

import "time"

// Well-known settings keys.  The values hold notification templates
// with {placeholder} tokens that the notifier substitutes at send
// time.
const (
	SettingAutoCheckoutTemplate     = "MSG_RESERVA_AUTO_CHECKOUT"
	SettingServiceCompletedTemplate = "MSG_SERVICE_COMPLETADO"
)

// Setting is a key/value configuration row editable by
// administrators.  Background jobs read settings (message templates)
// but never write them.
type Setting struct {
	Key       string    `json:"key"`        // settings.k
	Value     string    `json:"value"`      // settings.v
	UpdatedAt time.Time `json:"updated_at"` // settings.updated_at
}
