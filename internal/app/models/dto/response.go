package dto

// Envelope is the fixed response shape used for both success and error
// responses. The HTTP status code is always set to Code by the caller.
type Envelope struct {
	Status      string      `json:"status" example:"success"`
	Code        int         `json:"code" example:"200"`
	Method      string      `json:"method" example:"GET"`
	Message     string      `json:"message" example:"records retrieved"`
	Data        interface{} `json:"data,omitempty"`
	AccessToken string      `json:"access_token,omitempty"`
}

// NewSuccess creates a success envelope
func NewSuccess(code int, method, message string) Envelope {
	return Envelope{
		Status:  "success",
		Code:    code,
		Method:  method,
		Message: message,
	}
}

// NewError creates an error envelope
func NewError(code int, method, message string) Envelope {
	return Envelope{
		Status:  "error",
		Code:    code,
		Method:  method,
		Message: message,
	}
}

// WithData attaches a payload to the envelope
func (e Envelope) WithData(data interface{}) Envelope {
	e.Data = data
	return e
}

// WithToken attaches an access token to the envelope
func (e Envelope) WithToken(token string) Envelope {
	e.AccessToken = token
	return e
}
