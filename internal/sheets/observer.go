package sheets

import (
	"context"
	"time"
)

// Store is the tabular-store surface the repositories consume.
type Store interface {
	Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	Append(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error
	Update(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error
}

// CallObserver receives per-call timing for spreadsheet API traffic.
type CallObserver interface {
	ObserveStoreCall(operation string, duration time.Duration)
}

// ObservedStore decorates a Store with call timing. Failed calls are observed
// too; latency of errors matters as much as latency of successes.
type ObservedStore struct {
	store    Store
	observer CallObserver
}

// Observe wraps store so every call is reported to observer.
func Observe(store Store, observer CallObserver) *ObservedStore {
	return &ObservedStore{store: store, observer: observer}
}

func (o *ObservedStore) Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	start := time.Now()
	rows, err := o.store.Get(ctx, spreadsheetID, readRange)
	o.record("get", start)
	return rows, err
}

func (o *ObservedStore) Append(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error {
	start := time.Now()
	err := o.store.Append(ctx, spreadsheetID, writeRange, rows)
	o.record("append", start)
	return err
}

func (o *ObservedStore) Update(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error {
	start := time.Now()
	err := o.store.Update(ctx, spreadsheetID, writeRange, rows)
	o.record("update", start)
	return err
}

func (o *ObservedStore) record(operation string, start time.Time) {
	if o.observer == nil {
		return
	}
	o.observer.ObserveStoreCall(operation, time.Since(start))
}
