package model

import "errors"

// Ошибки ядра. Сервисы оборачивают их через fmt.Errorf("%s: %w", op, err),
// слой API распознает через errors.Is.
var (
	ErrInvalidParameters   = errors.New("invalid parameters")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNotOwner            = errors.New("not session owner")
	ErrCellAlreadyRevealed = errors.New("cell already revealed")
	ErrInvalidCell         = errors.New("invalid cell")
	ErrInvalidBet          = errors.New("invalid bet")
	ErrBonusNotReady       = errors.New("bonus not ready")
	ErrStorageFailure      = errors.New("storage failure")
)
