package response

type ErrorResponse struct {
	Error string `json:"error" example:"project not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Project updated successfully"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// DataResponse pairs a message with the affected resource.
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type TicketResponse struct {
	Message string      `json:"message"`
	Ticket  interface{} `json:"ticket"`
}

type AvatarResponse struct {
	Message string `json:"message"`
	Avatar  string `json:"avatar"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
