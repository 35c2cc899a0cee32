// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// recordingWorker is a test implementation of the Worker interface
// that appends its events to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (w *recordingWorker) Start(context.Context) {
	*w.log = append(*w.log, "start "+w.id)
}

func (w *recordingWorker) Stop() {
	*w.log = append(*w.log, "stop "+w.id)
}

func TestWorkers_StartStop_Order(t *testing.T) {
	var events []string
	ws := New(
		&recordingWorker{id: "1", log: &events},
		&recordingWorker{id: "2", log: &events},
		&recordingWorker{id: "3", log: &events},
	)

	ws.Start(context.Background())
	ws.Stop()

	expected := []string{"start 1", "start 2", "start 3", "stop 3", "stop 2", "stop 1"}
	if len(events) != len(expected) {
		t.Fatalf("expected %d events, got %d: %v", len(expected), len(events), events)
	}
	for i, v := range expected {
		if events[i] != v {
			t.Errorf("expected events[%d]=%q, got %q", i, v, events[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}
