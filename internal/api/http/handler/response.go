package handler

import (
	"github.com/taskloop/taskloop-server/internal/model"
)

// dataResponse is the standard success envelope.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// listResponse extends the success envelope with pagination metadata.
type listResponse struct {
	Success    bool             `json:"success"`
	Data       []model.Todo     `json:"data"`
	Pagination model.Pagination `json:"pagination"`
}

// sessionResponse is returned by register and login.
type sessionResponse struct {
	Success bool             `json:"success"`
	Token   string           `json:"token"`
	User    model.PublicUser `json:"user"`
}

// errorResponse is the envelope for every failure.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func newDataResponse(data any) dataResponse {
	return dataResponse{Success: true, Data: data}
}

func newListResponse(todos []model.Todo, pagination model.Pagination) listResponse {
	if todos == nil {
		todos = []model.Todo{}
	}
	return listResponse{Success: true, Data: todos, Pagination: pagination}
}

func newErrorResponse(message string) errorResponse {
	return errorResponse{Success: false, Message: message}
}
