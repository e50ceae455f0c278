package handlers

import (
	"encoding/json"
	"net/http"

	"contact-form-api/internal/middleware"
	"contact-form-api/internal/models"
	"contact-form-api/internal/services"
	"contact-form-api/pkg/lambda"
)

// Response messages returned to form clients
const (
	SuccessMessage       = "Form submitted successfully!"
	InvalidJSONMessage   = "Invalid JSON in request body."
	InternalErrorMessage = "An error occurred. Please try again later."
)

// MessageResponse is the JSON body of every submission response
type MessageResponse struct {
	Message string `json:"message"`
}

// statusFor maps a classified service error to a status code and client message
func statusFor(kind services.ErrorKind) (int, string) {
	switch kind {
	case services.KindNone:
		return http.StatusOK, SuccessMessage
	case services.KindMalformedPayload:
		return http.StatusBadRequest, InvalidJSONMessage
	case services.KindValidation:
		return http.StatusBadRequest, models.MissingFieldsMessage
	default:
		return http.StatusInternalServerError, InternalErrorMessage
	}
}

// newMessageResponse builds a serverless response carrying a message body and the CORS headers
func newMessageResponse(status int, message string) *lambda.Response {
	body, _ := json.Marshal(MessageResponse{Message: message})
	return &lambda.Response{
		StatusCode: status,
		Headers:    middleware.CORSHeaders(),
		Body:       body,
	}
}
