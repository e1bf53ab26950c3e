package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrder          = errors.New("invalid order")
	ErrPaymentNotConfirmed   = errors.New("payment has not been confirmed")
	ErrPaymentAlreadyUsed    = errors.New("payment is already attached to an order")
	ErrInvalidTransition     = errors.New("invalid order status transition")
	ErrForbidden             = errors.New("access denied")
	ErrCustomProductNotFound = errors.New("custom product not found")
	ErrInvalidCustomProduct  = errors.New("invalid custom product")
	ErrSupplierOrderNotFound = errors.New("supplier has no order with this external id")

	ErrInvalidDimension       = errors.New("invalid dimension")
	ErrTemplateNotFound       = errors.New("no mockup templates found for product")
	ErrPrintAreaNotFound      = errors.New("no print areas found in template")
	ErrUnreadableImage        = errors.New("unreadable image")
	ErrInvalidVariant         = errors.New("invalid variant")
	ErrInvalidDesignFile      = errors.New("invalid design file")
	ErrNoVariantsAvailable    = errors.New("no in-stock variants available for product")
	ErrMockupSubmission       = errors.New("mockup submission failed")
	ErrMockupGenerationFailed = errors.New("mockup generation failed")
	ErrMockupTimeout          = errors.New("mockup generation timeout")
)

type InvalidVariantError struct {
	ProductID   int64
	Invalid     []int64
	ValidSample []int64
	// TotalValid is the size of the product's variant set; ValidSample may be shorter.
	TotalValid int
}

func (e *InvalidVariantError) Error() string {
	valid := joinIDs(e.ValidSample)
	if e.TotalValid > len(e.ValidSample) {
		valid += "..."
	}
	return fmt.Sprintf("variant ids [%s] do not belong to product %d, valid variants: [%s]",
		joinIDs(e.Invalid), e.ProductID, valid)
}

func (e *InvalidVariantError) Is(target error) bool {
	return target == ErrInvalidVariant
}

type MockupSubmissionError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *MockupSubmissionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", ErrMockupSubmission, e.Detail)
	}
	return fmt.Sprintf("%s: %v", ErrMockupSubmission, e.Err)
}

func (e *MockupSubmissionError) Is(target error) bool {
	return target == ErrMockupSubmission
}

func (e *MockupSubmissionError) Unwrap() error {
	return e.Err
}

type MockupGenerationFailedError struct {
	JobKey string
	Reason string
}

func (e *MockupGenerationFailedError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "unknown error"
	}
	return fmt.Sprintf("%s: %s", ErrMockupGenerationFailed, reason)
}

func (e *MockupGenerationFailedError) Is(target error) bool {
	return target == ErrMockupGenerationFailed
}

// MockupTimeoutError means polling gave up; the job may still complete and can be re-polled by JobKey.
type MockupTimeoutError struct {
	JobKey   string
	Attempts int
}

func (e *MockupTimeoutError) Error() string {
	return fmt.Sprintf("%s: job %s still pending after %d attempts", ErrMockupTimeout, e.JobKey, e.Attempts)
}

func (e *MockupTimeoutError) Is(target error) bool {
	return target == ErrMockupTimeout
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}
