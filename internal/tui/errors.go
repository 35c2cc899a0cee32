// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

func humanizeBackendError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		return "Сессия недействительна, войдите заново"
	case errors.Is(err, backend.ErrForbidden):
		return "Недостаточно прав"
	case errors.Is(err, backend.ErrNotFound):
		return "Не найдено"
	case errors.Is(err, backend.ErrUnavailable):
		return "Сервер недоступен"
	case errors.Is(err, backend.ErrNoSession):
		return "Вы не вошли в аккаунт"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
