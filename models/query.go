// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Row is a single record returned by the backend, keyed by column name.
type Row map[string]any

// Filter restricts a query to rows whose Column equals Value.
type Filter struct {
	Column string
	Value  string
}

// Query describes a read against one backend table.
//
// Columns defaults to "*" when empty. Limit <= 0 means no limit.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}
