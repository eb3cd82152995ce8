// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks calls to Start and Stop.
type mockWorker struct {
	startCount int
	stopCount  int
	order      *[]int
	id         int
}

func (m *mockWorker) Start(context.Context) {
	m.startCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, -m.id)
	}
}

func TestWorkers_StartStop_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.startCount != 1 {
			t.Errorf("worker[%d]: expected startCount=1, got %d", i, w.startCount)
		}
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on an empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_StopReversesStartOrder(t *testing.T) {
	order := []int{}
	w1 := &mockWorker{id: 1, order: &order}
	w2 := &mockWorker{id: 2, order: &order}

	ws := NewWorkers(w1, w2)
	ws.Start(context.Background())
	ws.Stop()

	expected := []int{1, 2, -2, -1}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}
