package models

// Operator is a dashboard account allowed to trigger and reset alarms.
type Operator struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
