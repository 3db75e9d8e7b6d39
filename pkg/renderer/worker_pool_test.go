package renderer

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestWorkerPool_RendersEveryRowOnce(t *testing.T) {
	var mu sync.Mutex
	rendered := make(map[int]int)

	pool := NewWorkerPool(4, func(y int) (ScanlineStats, error) {
		mu.Lock()
		rendered[y]++
		mu.Unlock()
		return ScanlineStats{Y: y, Pixels: 10}, nil
	})
	if pool.GetNumWorkers() != 4 {
		t.Fatalf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}

	rows := make([]int, 100)
	for i := range rows {
		rows[i] = i
	}

	results := 0
	err := pool.Run(context.Background(), rows, func(r ScanlineResult) {
		results++
		if r.Stats.Pixels != 10 {
			t.Errorf("Unexpected stats %+v", r.Stats)
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if results != len(rows) {
		t.Errorf("Expected %d results, got %d", len(rows), results)
	}
	for _, y := range rows {
		if rendered[y] != 1 {
			t.Errorf("Row %d rendered %d times", y, rendered[y])
		}
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0, func(y int) (ScanlineStats, error) { return ScanlineStats{}, nil })
	if pool.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}

func TestWorkerPool_StopsOnError(t *testing.T) {
	errBadRow := errors.New("bad row")
	pool := NewWorkerPool(2, func(y int) (ScanlineStats, error) {
		if y == 13 {
			return ScanlineStats{}, errBadRow
		}
		return ScanlineStats{Y: y}, nil
	})

	rows := make([]int, 50)
	for i := range rows {
		rows[i] = i
	}

	err := pool.Run(context.Background(), rows, func(r ScanlineResult) {
		if r.Stats.Y == 13 {
			t.Error("Failed rows should not be reported as results")
		}
	})
	if !errors.Is(err, errBadRow) {
		t.Errorf("Expected errBadRow, got %v", err)
	}
}
