package domain

import (
	"github.com/rs/zerolog/log"
)

type ResponseStatus string

const (
	ResponseStatus_Success ResponseStatus = "success"
	ResponseStatus_Error   ResponseStatus = "error"
)

// ToolResponse is the uniform envelope every tool call returns. A success
// envelope carries a result and no message; an error envelope carries a
// message and no result.
type ToolResponse struct {
	Status    ResponseStatus `json:"status"`
	Operation ToolName       `json:"operation"`
	Result    any            `json:"result,omitempty"`
	Message   string         `json:"message,omitempty"`
}

func NewSuccessResponse(operation ToolName, result any) ToolResponse {
	return ToolResponse{
		Status:    ResponseStatus_Success,
		Operation: operation,
		Result:    result,
	}
}

// NewErrorResponse builds an error envelope and records the failure in the
// process log, matching the success-side opcode lines the operations write.
func NewErrorResponse(operation ToolName, message string) ToolResponse {
	log.Error().Msgf("%s failed: %s", operation, message)

	return ToolResponse{
		Status:    ResponseStatus_Error,
		Operation: operation,
		Message:   message,
	}
}
