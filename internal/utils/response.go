package utils

// Response is the standard API envelope: a status code, a human-readable
// message, and the payload (null when absent).
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewResponse(status int, message string, data interface{}) Response {
	return Response{Status: status, Message: message, Data: data}
}

// NewSuccessResponse builds a 200 envelope.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Status: 200, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope with no payload.
func NewErrorResponse(status int, message string) Response {
	return Response{Status: status, Message: message, Data: nil}
}
