package transport

import (
	"encoding/json"
	"net/http"

	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/utils/errors"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// Every response uses the {status, ...} envelope over HTTP 200; errors are
// structured bodies, never bare HTTP failures. The storefront and the chat
// platform both key off the envelope, not the status code.

type successResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, successResponse{Status: "success", Data: data})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, messageResponse{Status: "success", Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Status: "error", Message: err.Error()}
	if cerr, ok := err.(errors.CustomError); ok {
		resp.Code = cerr.ErrorCode()
	} else {
		resp.Code = constant.ErrorTypeCode[constant.ErrInternal]
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write response", zap.String("error", err.Error()))
	}
}
