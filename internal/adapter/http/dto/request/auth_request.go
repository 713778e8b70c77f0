package request

type RegisterRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ConfirmationAnswer answers a prompt streamed on the session. A missing
// "confirmed" is rejected rather than read as false.
type ConfirmationAnswer struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}
