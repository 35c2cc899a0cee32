package workers

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/internal/mock"
	"github.com/MKhiriev/go-backend-scope/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newRefreshJob(t *testing.T) (*SessionRefreshJob, *mock.MockService) {
	t.Helper()
	c := mock.NewMockService(gomock.NewController(t))
	job := NewSessionRefreshJob(c, time.Hour, time.Minute, nil)
	job.now = func() time.Time { return fixedNow }
	return job, c
}

func TestNewSessionRefreshJob_Defaults(t *testing.T) {
	job := NewSessionRefreshJob(nil, 0, -1, nil)

	assert.Equal(t, defaultRefreshCheck, job.every)
	assert.Equal(t, defaultRefreshMargin, job.margin)
}

func TestSessionRefreshJob_Check(t *testing.T) {
	tests := []struct {
		name        string
		session     models.Session
		held        bool
		wantRefresh bool
	}{
		{name: "no session", held: false},
		{name: "no expiry", session: models.Session{AccessToken: "a"}, held: true},
		{name: "far from expiry", session: models.Session{ExpiresAt: fixedNow.Add(time.Hour)}, held: true},
		{name: "within margin", session: models.Session{ExpiresAt: fixedNow.Add(30 * time.Second)}, held: true, wantRefresh: true},
		{name: "already expired", session: models.Session{ExpiresAt: fixedNow.Add(-time.Minute)}, held: true, wantRefresh: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, c := newRefreshJob(t)
			c.EXPECT().Session().Return(tt.session, tt.held)
			if tt.wantRefresh {
				c.EXPECT().RefreshSession(gomock.Any()).Return(models.Session{ExpiresAt: fixedNow.Add(time.Hour)}, nil)
			}

			job.check(context.Background())
		})
	}
}

func TestSessionRefreshJob_CheckRefreshError(t *testing.T) {
	job, c := newRefreshJob(t)
	c.EXPECT().Session().Return(models.Session{ExpiresAt: fixedNow}, true)
	c.EXPECT().RefreshSession(gomock.Any()).Return(models.Session{}, backend.ErrUnauthorized)

	assert.NotPanics(t, func() { job.check(context.Background()) })
}

func TestSessionRefreshJob_CheckSessionGoneBeforeRefresh(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "signed out", err: fmt.Errorf("refresh session: %w", backend.ErrNoSession)},
		{name: "replaced", err: fmt.Errorf("refresh session: %w", backend.ErrSessionChanged)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := mock.NewMockService(gomock.NewController(t))
			job := NewSessionRefreshJob(c, time.Hour, time.Minute, &logger.Logger{Logger: zerolog.New(&buf)})
			job.now = func() time.Time { return fixedNow }

			gomock.InOrder(
				c.EXPECT().Session().Return(models.Session{AccessToken: "a", ExpiresAt: fixedNow.Add(10 * time.Second)}, true),
				c.EXPECT().RefreshSession(gomock.Any()).Return(models.Session{}, tt.err),
			)

			job.check(context.Background())

			assert.Contains(t, buf.String(), `"level":"debug"`)
			assert.NotContains(t, buf.String(), `"level":"warn"`)
		})
	}
}

func TestSessionRefreshJob_CheckRejectedRefreshWarns(t *testing.T) {
	var buf bytes.Buffer
	c := mock.NewMockService(gomock.NewController(t))
	job := NewSessionRefreshJob(c, time.Hour, time.Minute, &logger.Logger{Logger: zerolog.New(&buf)})
	job.now = func() time.Time { return fixedNow }

	c.EXPECT().Session().Return(models.Session{ExpiresAt: fixedNow}, true)
	c.EXPECT().RefreshSession(gomock.Any()).Return(models.Session{}, backend.ErrUnauthorized)

	job.check(context.Background())

	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestSessionRefreshJob_RunsOnTicker(t *testing.T) {
	c := mock.NewMockService(gomock.NewController(t))
	c.EXPECT().Session().Return(models.Session{}, false).MinTimes(2)

	job := NewSessionRefreshJob(c, 10*time.Millisecond, time.Minute, nil)
	job.Start(context.Background())
	time.Sleep(45 * time.Millisecond)
	job.Stop()
}

func TestSessionRefreshJob_StopBeforeStart(t *testing.T) {
	job := NewSessionRefreshJob(nil, time.Second, time.Second, nil)

	assert.NotPanics(t, func() { job.Stop() })
}
