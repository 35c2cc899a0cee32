// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO sessions (
			id,
			access_token,
			refresh_token,
			token_type,
			expires_at,
			email,
			saved_at
		) VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expires_at = excluded.expires_at,
			email = excluded.email,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT
			access_token,
			refresh_token,
			token_type,
			expires_at,
			email
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions;`
)
