package chat

import "EportsTech/internal/entity"

type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required,max=4000"`
}

type ChatRequest struct {
	Message  string          `json:"message" validate:"required,max=2000"`
	History  []ChatTurn      `json:"history" validate:"max=40,dive"`
	Language entity.Language `json:"lang" validate:"omitempty,language"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	// Fallback is set when the assistant could not answer and Reply holds
	// the localized apology.
	Fallback bool `json:"fallback"`
}

type GreetingResponse struct {
	Greeting string `json:"greeting"`
	Open     bool   `json:"open"`
}
