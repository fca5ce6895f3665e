// Package snapshot keeps rendered dashboard pages, so the last good page can be served
// while the analytics api is unavailable.
package snapshot

import (
	"bytes"
	"fmt"
	"time"

	"github.com/m-zajac/projectinsights/internal/metrics"
	"github.com/sirupsen/logrus"
)

var (
	latestKey     = []byte("page/latest")
	historyPrefix = []byte("page/")
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	DeleteKey(key []byte) error
	KeysWithPrefix(prefix []byte) ([][]byte, error)
}

// Archive stores rendered pages. The latest page is always kept, besides it at most
// retention most recent pages are kept as history.
type Archive struct {
	store     KVStore
	retention int
	now       func() time.Time
	l         logrus.FieldLogger
}

// NewArchive creates new Archive instance.
func NewArchive(store KVStore, retention int, l logrus.FieldLogger) *Archive {
	if retention < 0 {
		retention = 0
	}

	return &Archive{
		store:     store,
		retention: retention,
		now:       time.Now,
		l:         l,
	}
}

// historyKey is zero padded, so keys order is chronological.
func historyKey(t time.Time) []byte {
	return []byte(fmt.Sprintf("%s%020d", historyPrefix, t.UnixNano()))
}

// Save stores page as the latest one and prunes history.
func (a *Archive) Save(page []byte) error {
	if a.retention > 0 {
		if err := a.store.UpdateKey(historyKey(a.now()), page); err != nil {
			return fmt.Errorf("storing page history: %w", err)
		}
	}
	if err := a.store.UpdateKey(latestKey, page); err != nil {
		return fmt.Errorf("storing latest page: %w", err)
	}
	metrics.SnapshotsStored.Inc()

	if err := a.prune(); err != nil {
		a.l.Warnf("couldn't prune page history: %v", err)
	}

	return nil
}

// Latest returns last saved page, nil if no page was saved yet.
func (a *Archive) Latest() ([]byte, error) {
	page, err := a.store.ReadKey(latestKey)
	if err != nil {
		return nil, fmt.Errorf("reading latest page: %w", err)
	}

	return page, nil
}

// History returns save times of pages kept in history, oldest first.
func (a *Archive) History() ([]time.Time, error) {
	keys, err := a.historyKeys()
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		var nsec int64
		if _, err := fmt.Sscanf(string(k[len(historyPrefix):]), "%d", &nsec); err != nil {
			continue
		}
		times = append(times, time.Unix(0, nsec))
	}

	return times, nil
}

func (a *Archive) historyKeys() ([][]byte, error) {
	keys, err := a.store.KeysWithPrefix(historyPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	history := keys[:0]
	for _, k := range keys {
		if !bytes.Equal(k, latestKey) {
			history = append(history, k)
		}
	}

	return history, nil
}

func (a *Archive) prune() error {
	keys, err := a.historyKeys()
	if err != nil {
		return err
	}
	if len(keys) <= a.retention {
		return nil
	}

	for _, k := range keys[:len(keys)-a.retention] {
		if err := a.store.DeleteKey(k); err != nil {
			return fmt.Errorf("deleting %s: %w", k, err)
		}
	}

	return nil
}
