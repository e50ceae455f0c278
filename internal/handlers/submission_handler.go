package handlers

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"contact-form-api/internal/middleware"
	"contact-form-api/internal/services"
	"contact-form-api/pkg/lambda"
)

// SubmissionHandler handles contact form submissions
type SubmissionHandler struct {
	submissionService services.SubmissionService
	logger            *logrus.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService services.SubmissionService, logger *logrus.Logger) *SubmissionHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// HandleSubmit processes a submission delivered through API Gateway.
// The returned error is always nil; every failure is expressed as a response.
func (h *SubmissionHandler) HandleSubmit(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	body, err := req.DecodedBody()
	if err != nil {
		return newMessageResponse(statusFor(services.KindMalformedPayload)), nil
	}

	status, message := h.submit(ctx, body, nil)
	return newMessageResponse(status, message), nil
}

// @Summary Submit the contact form
// @Description Validate and store a contact form submission
// @Tags submissions
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	for key, value := range middleware.CORSHeaders() {
		c.Header(key, value)
	}

	body, err := c.GetRawData()
	if err != nil {
		status, message := statusFor(services.KindMalformedPayload)
		c.JSON(status, MessageResponse{Message: message})
		return
	}

	fields := logrus.Fields{}
	if requestID := c.GetString(middleware.RequestIDKey); requestID != "" {
		fields["request_id"] = requestID
	}

	status, message := h.submit(c.Request.Context(), body, fields)
	c.JSON(status, MessageResponse{Message: message})
}

// submit runs the service and converts its outcome, recovering from panics as internal errors
func (h *SubmissionHandler) submit(ctx context.Context, body []byte, fields logrus.Fields) (status int, message string) {
	defer func() {
		if r := recover(); r != nil {
			h.logFailure(ctx, fmt.Errorf("panic: %v", r), services.KindUnclassified, fields)
			status, message = statusFor(services.KindUnclassified)
		}
	}()

	_, err := h.submissionService.Submit(ctx, body)
	kind := services.Classify(err)
	if kind == services.KindPersistence || kind == services.KindUnclassified {
		h.logFailure(ctx, err, kind, fields)
	}
	return statusFor(kind)
}

func (h *SubmissionHandler) logFailure(ctx context.Context, err error, kind services.ErrorKind, fields logrus.Fields) {
	entry := h.logger.WithFields(fields).WithFields(logrus.Fields{
		"error":      err.Error(),
		"error_kind": kind.String(),
	})
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.WithFields(logrus.Fields{
			"aws_request_id": lc.AwsRequestID,
			"function_name":  lambdacontext.FunctionName,
		})
	}
	entry.Error("Submission failed")
}
