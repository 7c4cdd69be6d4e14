package dto

// CreateAccountRequest is the POST /api/accounts body.
type CreateAccountRequest struct {
	ServiceName  string `json:"serviceName"`
	Email        string `json:"email"`
	MaxUserSlots int    `json:"maxUserSlots"`
}

// UpdateAccountRequest resizes an account's capacity.
type UpdateAccountRequest struct {
	MaxUserSlots int `json:"maxUserSlots"`
}

// AccountResponse mirrors a shared account with derived availability.
type AccountResponse struct {
	ID             int64  `json:"id"`
	ServiceName    string `json:"serviceName"`
	Email          string `json:"email"`
	MaxUserSlots   int    `json:"maxUserSlots"`
	CurrentUsers   int    `json:"currentUsers"`
	AvailableSlots int    `json:"availableSlots"`
}
