package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// requireCaller は認証済みの呼び出し元を取り出す。なければ 401 を書いて false を返す。
func requireCaller(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (model.Caller, bool) {
	caller, err := middleware.GetCallerFromContext(r.Context())
	if err != nil {
		logger.Warn("Caller not found in context", "error", err)
		webutil.HandleError(w, logger, err)
		return model.Caller{}, false
	}
	return caller, true
}

// decodeAndValidate はボディのデコードとバリデーションを行う。失敗時は 400 を書いて false を返す。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", "errors", validationErrors.Error())
		} else {
			logger.Error("Unexpected error during validation", "error", err)
		}
		webutil.HandleError(w, logger, webutil.NewValidationError(err))
		return false
	}
	return true
}
