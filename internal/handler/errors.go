package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/utils"
)

var badRequestErrors = []error{
	entities.ErrInvalidOrder,
	entities.ErrInvalidDimension,
	entities.ErrInvalidDesignFile,
	entities.ErrTemplateNotFound,
	entities.ErrPrintAreaNotFound,
	entities.ErrUnreadableImage,
	entities.ErrInvalidCustomProduct,
	entities.ErrNoVariantsAvailable,
	entities.ErrInvalidVariant,
}

// writeServiceError maps domain errors to HTTP responses. Anything unknown is
// logged and reported as an internal error.
func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		invalidVariant *entities.InvalidVariantError
		timeout        *entities.MockupTimeoutError
		submission     *entities.MockupSubmissionError
	)

	switch {
	case errors.As(err, &invalidVariant):
		utils.WriteErrorDetails(w, err.Error(), map[string]any{
			"product_id":          invalidVariant.ProductID,
			"invalid_variant_ids": invalidVariant.Invalid,
			"valid_variant_ids":   invalidVariant.ValidSample,
			"total_valid":         invalidVariant.TotalValid,
		}, http.StatusBadRequest)

	case errors.As(err, &timeout):
		utils.WriteErrorDetails(w, "mockup generation timeout", map[string]any{
			"job_key":  timeout.JobKey,
			"attempts": timeout.Attempts,
		}, http.StatusGatewayTimeout)

	case errors.As(err, &submission):
		h.logger.WarnContext(r.Context(), "mockup submission rejected",
			slog.String("op", op), slog.Int("supplier_status", submission.StatusCode), slog.Any("error", err))
		details := map[string]any{}
		if submission.StatusCode != 0 {
			details["supplier_status"] = submission.StatusCode
		}
		utils.WriteErrorDetails(w, err.Error(), details, http.StatusBadGateway)

	case errors.Is(err, entities.ErrMockupGenerationFailed):
		utils.WriteError(w, err.Error(), http.StatusBadGateway)

	case isBadRequest(err):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrPaymentNotConfirmed):
		utils.WriteError(w, entities.ErrPaymentNotConfirmed.Error(), http.StatusPaymentRequired)

	case errors.Is(err, entities.ErrPaymentAlreadyUsed):
		utils.WriteError(w, entities.ErrPaymentAlreadyUsed.Error(), http.StatusConflict)

	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)

	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrCustomProductNotFound):
		utils.WriteError(w, "custom product not found", http.StatusNotFound)

	default:
		h.logger.ErrorContext(r.Context(), "request failed", slog.String("op", op), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func isBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
