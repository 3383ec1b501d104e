package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=50,categoryname"`
}

type CreateTaskRequest struct {
	Description string `json:"description" validate:"required,max=500"`
	Category    string `json:"category" validate:"omitempty,max=50,categoryname"`
	DueDate     string `json:"due_date" validate:"omitempty,dateformat"`
}

type LogSessionRequest struct {
	Subject         string `json:"subject" validate:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"gt=0,lte=1440"`
	Notes           string `json:"notes" validate:"max=5000"`
	StartTime       string `json:"start_time" validate:"omitempty,timestamp"`
}

type SaveAIContentRequest struct {
	Type       ContentType `json:"type" validate:"required,contenttype"`
	Title      string      `json:"title" validate:"max=200"`
	InputText  string      `json:"input_text"`
	OutputText string      `json:"output_text" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=8000"`
}

// ChatMessageRequest is one message about to be written to the chat history.
type ChatMessageRequest struct {
	Role    ChatRole `json:"role" validate:"required,chatrole"`
	Content string   `json:"content" validate:"required"`
}
