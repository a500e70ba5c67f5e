package service

import (
	"errors"

	"github.com/tdevakiruba/Workforce/internal/model"
)

var (
	errEnrollmentNotFound = model.NewAppError("NOT_FOUND", "Enrollment not found", "enrollmentId", model.ErrNotFound)
	errProgramNotFound    = model.NewAppError("NOT_FOUND", "Program not found", "", model.ErrNotFound)
	errNotEnrolled        = model.NewAppError("NOT_FOUND", "No active enrollment for this program", "", model.ErrNotFound)
)

// enrollmentLookupError はリポジトリのエラーを API 向けのエラーに変換する
func enrollmentLookupError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return errEnrollmentNotFound
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
}

// checkOwner は受講が呼び出し元のものであることを確認する
func checkOwner(enrollment *model.Enrollment, caller model.Caller) error {
	if enrollment.UserID != caller.UserID {
		return model.NewAppError("FORBIDDEN", "Enrollment does not belong to the current user", "enrollmentId", model.ErrForbidden)
	}
	return nil
}

// checkDayWritable はカーソルの日だけを編集可能にする。
// 過去の日は確定済み、未来の日は未解放。
func checkDayWritable(enrollment *model.Enrollment, dayNumber int) error {
	cursor := enrollment.Cursor()
	if dayNumber < cursor {
		return model.NewAppError("DAY_LOCKED", "Past days cannot be modified", "dayNumber", model.ErrForbidden)
	}
	if dayNumber > cursor {
		return model.NewAppError("DAY_NOT_UNLOCKED", "This day is not unlocked yet", "dayNumber", model.ErrForbidden)
	}
	return nil
}

// toAppError は AppError 以外のエラーを 500 に包む
func toAppError(err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
}
