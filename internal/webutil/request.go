package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のフィールドや複数のJSON値は model.ErrInvalidInput として扱います。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errors.Join(model.ErrInvalidInput, err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.Join(model.ErrInvalidInput, errors.New("request body must contain a single JSON object"))
	}
	return nil
}
