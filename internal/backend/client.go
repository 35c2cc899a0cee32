// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/config"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	clientInfo      = "go-backend-scope"
	requestIDHeader = "X-Request-ID"

	restPath   = "/rest/v1/"
	tokenPath  = "/auth/v1/token"
	logoutPath = "/auth/v1/logout"
)

type client struct {
	http    *resty.Client
	baseURL string
	logger  *logger.Logger

	mu      sync.RWMutex
	session *models.Session
	// gen changes on every session replacement; a refresh only installs its
	// result when gen still matches the value it started from.
	gen uint64
}

// New constructs the backend client for cfg. Every request carries the anon
// key as both the apikey header and the default bearer token, and targets
// cfg.Schema.
func New(cfg config.ClientBackend, log *logger.Logger) (Service, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("backend url is required")
	}
	if cfg.AnonKey == "" {
		return nil, errors.New("backend anon key is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.Schema == "" {
		cfg.Schema = "public"
	}
	if log == nil {
		log = logger.Nop()
	}

	c := &client{
		baseURL: baseURL,
		logger:  log.GetChildLogger(),
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.AnonKey).
		SetHeader("Accept-Profile", cfg.Schema).
		SetHeader("X-Client-Info", clientInfo).
		SetAuthToken(cfg.AnonKey).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(requestIDHeader) == "" {
				req.SetHeader(requestIDHeader, uuid.NewString())
			}
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			c.logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Str("request_id", resp.Request.Header.Get(requestIDHeader)).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("backend request")
			return nil
		}).
		OnError(func(req *resty.Request, err error) {
			c.logger.Warn().
				Err(err).
				Str("method", req.Method).
				Str("url", req.URL).
				Str("request_id", req.Header.Get(requestIDHeader)).
				Msg("backend request failed")
		})

	return c, nil
}

func (c *client) URL() string {
	return c.baseURL
}

func (c *client) Health(ctx context.Context) (models.Health, error) {
	resp, err := c.request(ctx).Get(restPath)
	if err != nil {
		return models.Health{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Health{}, err
	}

	return models.Health{
		URL:        c.baseURL,
		StatusCode: resp.StatusCode(),
		Latency:    resp.Time(),
		CheckedAt:  resp.ReceivedAt(),
	}, nil
}

func (c *client) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	session, err := c.exchangeToken(ctx, "password", map[string]string{"email": email, "password": password})
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in: %w", err)
	}
	if session.Email == "" {
		session.Email = email
	}

	c.setSession(&session)
	c.logger.Info().Str("user_id", session.UserID.String()).Msg("signed in")

	return session, nil
}

func (c *client) RefreshSession(ctx context.Context) (models.Session, error) {
	current, gen, ok := c.snapshot()
	if !ok {
		return models.Session{}, ErrNoSession
	}
	if current.RefreshToken == "" {
		return models.Session{}, fmt.Errorf("refresh session: %w: no refresh token", ErrInvalidToken)
	}

	session, err := c.exchangeToken(ctx, "refresh_token", map[string]string{"refresh_token": current.RefreshToken})
	if err != nil {
		if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnauthorized) {
			c.replaceSession(gen, nil)
		}
		return models.Session{}, fmt.Errorf("refresh session: %w", err)
	}
	if session.Email == "" {
		session.Email = current.Email
	}

	if !c.replaceSession(gen, &session) {
		c.logger.Debug().Msg("refreshed session discarded: session changed during refresh")
		return models.Session{}, fmt.Errorf("refresh session: %w", ErrSessionChanged)
	}
	c.logger.Debug().Str("user_id", session.UserID.String()).Time("expires_at", session.ExpiresAt).Msg("session refreshed")

	return session, nil
}

func (c *client) RestoreSession(session models.Session) error {
	if session.AccessToken == "" {
		return fmt.Errorf("restore session: %w: empty access token", ErrInvalidToken)
	}

	userID, email, expiresAt, err := parseSessionToken(session.AccessToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	session.UserID = userID
	if email != "" {
		session.Email = email
	}
	if !expiresAt.IsZero() {
		session.ExpiresAt = expiresAt
	}

	c.setSession(&session)
	return nil
}

// exchangeToken posts body to the token endpoint with grantType and decodes
// the issued session. Identity and expiry come from the access token claims.
func (c *client) exchangeToken(ctx context.Context, grantType string, body map[string]string) (models.Session, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", grantType).
		SetBody(body).
		Post(tokenPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode token response: %w", err)
	}

	userID, email, expiresAt, err := parseSessionToken(session.AccessToken)
	if err != nil {
		return models.Session{}, err
	}
	if expiresAt.IsZero() && session.ExpiresIn > 0 {
		expiresAt = resp.ReceivedAt().Add(time.Duration(session.ExpiresIn) * time.Second)
	}

	session.UserID = userID
	session.Email = email
	session.ExpiresAt = expiresAt

	return session, nil
}

func (c *client) SignOut(ctx context.Context) error {
	if _, ok := c.Session(); !ok {
		return ErrNoSession
	}

	resp, err := c.request(ctx).Post(logoutPath)
	c.setSession(nil)
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.logger.Info().Msg("signed out")
	return nil
}

func (c *client) Session() (models.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return models.Session{}, false
	}
	return *c.session, true
}

func (c *client) Select(ctx context.Context, query models.Query) ([]models.Row, error) {
	table := strings.TrimSpace(query.Table)
	if table == "" {
		return nil, ErrEmptyTable
	}

	resp, err := c.request(ctx).
		SetQueryParamsFromValues(selectParams(query)).
		Get(restPath + url.PathEscape(table))
	if err != nil {
		return nil, fmt.Errorf("select request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.Row
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode select response: %w", err)
	}

	return rows, nil
}

// request returns a request bound to ctx carrying the session's access token
// when one is held. Otherwise the client-level anon token applies.
func (c *client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if s, ok := c.Session(); ok && s.AccessToken != "" {
		req.SetAuthToken(s.AccessToken)
	}
	return req
}

func (c *client) snapshot() (models.Session, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return models.Session{}, c.gen, false
	}
	return *c.session, c.gen, true
}

func (c *client) setSession(s *models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
	c.gen++
}

// replaceSession installs s only if no other replacement happened since gen
// was read.
func (c *client) replaceSession(gen uint64, s *models.Session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.session = s
	c.gen++
	return true
}

func selectParams(q models.Query) url.Values {
	params := url.Values{}

	columns := "*"
	if len(q.Columns) > 0 {
		columns = strings.Join(q.Columns, ",")
	}
	params.Set("select", columns)

	for _, f := range q.Filters {
		if f.Column == "" {
			continue
		}
		params.Add(f.Column, "eq."+f.Value)
	}

	if q.OrderBy != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		params.Set("order", q.OrderBy+"."+dir)
	}

	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	return params
}
