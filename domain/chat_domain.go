package domain

var (
	MessageSuccessChatReply = "chat reply generated successfully"

	MessageFailedChatReply = "failed to generate chat reply"
)

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
)
