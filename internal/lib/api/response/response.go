package response

// Response is the JSON envelope returned by every API endpoint.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

func Ok(message string) Response {
	return Response{Status: StatusOK, Message: message}
}

func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}
