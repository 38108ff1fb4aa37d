package apierr

import (
	"errors"
	"net/http"

	"wager_backend/internal/model"
)

// StatusCode переводит ошибку ядра в HTTP-статус. Само ядро текстов для
// пользователя не формирует, это задача адаптера.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidParameters),
		errors.Is(err, model.ErrInvalidBet),
		errors.Is(err, model.ErrInvalidCell),
		errors.Is(err, model.ErrCellAlreadyRevealed),
		errors.Is(err, model.ErrBonusNotReady):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает безопасный текст для клиента: внутренние ошибки
// наружу не протекают.
func Message(err error) string {
	for _, known := range []error{
		model.ErrInvalidParameters,
		model.ErrInvalidBet,
		model.ErrInvalidCell,
		model.ErrCellAlreadyRevealed,
		model.ErrBonusNotReady,
		model.ErrInsufficientFunds,
		model.ErrSessionNotFound,
		model.ErrNotOwner,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal error"
}
