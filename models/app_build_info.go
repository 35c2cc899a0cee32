// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags and shown
// in the client's "about" overlay.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; blank values are reported as N/A.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
