package http

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogv1 "github.com/you-humble/knowledge-archive/internal/api/catalog/v1"
	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/platform/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := mapError(err)
	if res.Code >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.ErrorF(err))
	}
	writeJSON(w, r, res.Code, res)
}

func mapError(err error) catalogv1.Error {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return catalogv1.Error{ // 400
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	case errors.Is(err, model.ErrPartNotFound), errors.Is(err, model.ErrCarNotFound):
		return catalogv1.Error{ // 404
			Code:    http.StatusNotFound,
			Message: err.Error(),
		}
	default:
		return catalogv1.Error{ // 500
			Code:    http.StatusInternalServerError,
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
}
