package console

import (
	"errors"

	"github.com/ogurasousui/codex-payroll-console/internal/core/employee"
)

// toMessage はドメインエラーを利用者向けメッセージに変換します。
// 利用者の入力で解消できないエラーの場合は ok が false になります。
func toMessage(err error) (msg string, ok bool) {
	switch {
	case err == nil:
		return "", true
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrIDAlreadyExists),
		errors.Is(err, employee.ErrInvalidName),
		errors.Is(err, employee.ErrInvalidRate),
		errors.Is(err, employee.ErrInvalidCount),
		errors.Is(err, employee.ErrPayOverflow):
		return msgInvalidInput, true
	case errors.Is(err, employee.ErrRegistryFull):
		return msgRegistryFull, true
	default:
		return "", false
	}
}
