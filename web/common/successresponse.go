package common

// SuccessResponse wraps every 2xx JSON payload in a data envelope.
type SuccessResponse struct {
	Data any `json:"data"`
}

func NewSuccessResponse(data any) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}
