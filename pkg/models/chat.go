package models

import "obra_api/pkg/prompts"

// ChatRequest is the JSON body of POST /chat. Field names match what the
// frontend already sends.
type ChatRequest struct {
	// Title of the artwork the persona embodies. Required.
	Title string `json:"obra"`

	// Author, optionally "name: alias"; a "sin nombre" prefix flags an
	// anonymous author.
	Author string `json:"autor,omitempty"`

	// Color is a free-form approximate color description.
	Color string `json:"color,omitempty"`

	// Length is the answer-length directive, default "intermedias".
	Length string `json:"longitud,omitempty"`

	// History holds prior turns, forwarded verbatim and in order.
	History []prompts.Message `json:"chatHistory,omitempty"`

	// UserMessage is the new message from the visitor, if any.
	UserMessage string `json:"user_message,omitempty"`
}

// ChatResponse carries the generated persona reply.
type ChatResponse struct {
	Reply string `json:"respuesta"`
}

// MatchRequest is the JSON body of POST /match. Names, Authors and Colors
// are parallel lists; Authors and Colors may be shorter than Names and the
// missing tail defaults to empty strings.
type MatchRequest struct {
	// ImageB64 is the photographed artwork, base64-encoded. A data: URL
	// prefix is tolerated and stripped. Required.
	ImageB64 string `json:"image_b64"`

	Names   []string `json:"names"`
	Authors []string `json:"authors,omitempty"`
	Colors  []string `json:"colors,omitempty"`
}

// MatchResult is the normalized verdict of the match operation. All five
// fields are always present in the response; fields the model omitted are
// default-filled (BestIndex -1, zero values elsewhere).
type MatchResult struct {
	Description string  `json:"description"`
	BestIndex   int     `json:"best_index"`
	BestName    string  `json:"best_name"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
}

// ErrorResponse is the single error envelope used by both endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
