package transport

import (
	"encoding/json"
	"net/http"

	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/utils/errors"
)

type response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if customErr, ok := err.(errors.CustomError); ok {
		w.WriteHeader(customErr.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(response{
			Code:    customErr.ErrorCode(),
			Message: customErr.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
	})
}
