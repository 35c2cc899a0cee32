// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-backend-scope/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, backendURL string) string {
	var b strings.Builder

	b.WriteString("Версия: ")
	b.WriteString(info.Version())
	b.WriteString("\nДата: ")
	b.WriteString(info.Date())
	b.WriteString("\nКоммит: ")
	b.WriteString(info.Commit())
	b.WriteString("\nСервер: ")
	b.WriteString(backendURL)

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", overlayStyle.Render(b.String()), "esc: назад")
}
