package progression

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/metrics"
)

// Mutation edits a private copy of the table inside Manager.Update
type Mutation func(t *Table) error

// Manager owns the progression document on disk and publishes snapshots.
// Readers call Current; every write goes through Update, Reload or Load
// and results in a new snapshot.
type Manager struct {
	path    string
	current atomic.Pointer[Table]

	writeMu sync.Mutex

	subsMu sync.Mutex
	subs   map[int]chan *Table
	nextID int
}

// NewManager creates a manager serving defaults until Load is called
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultConfigPath
	}
	m := &Manager{
		path: path,
		subs: make(map[int]chan *Table),
	}
	m.current.Store(DefaultTable())
	return m
}

// Path returns the backing file
func (m *Manager) Path() string {
	return m.path
}

// Current returns the live snapshot
func (m *Manager) Current() *Table {
	return m.current.Load()
}

// Load reads the document, writing defaults first when it does not exist.
// On read or parse failure the in-memory defaults stay live and the error is returned.
func (m *Manager) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	t, err := m.readFile()
	if errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultTable()
		if err := m.writeFile(defaults); err != nil {
			log.Error(LogMsgConfigSaveFailed, "path", m.path, "error", err)
			m.publish(defaults)
			return err
		}
		log.Info(LogMsgConfigCreated, "path", m.path)
		m.publish(defaults)
		return nil
	}
	if err != nil {
		log.Error(LogMsgConfigLoadFailed, "path", m.path, "error", err)
		m.publish(DefaultTable())
		return err
	}

	log.Info(LogMsgConfigLoaded, "path", m.path, "levels", len(t.Levels), "max_level", t.General.MaxLevel)
	m.publish(t)
	return nil
}

// Reload re-reads the document. The previous snapshot stays live on failure.
func (m *Manager) Reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	t, err := m.readFile()
	if err != nil {
		metrics.ConfigReloads.WithLabelValues(ReloadStatusFailure).Inc()
		log.Warn(LogMsgConfigReloadFailed, "path", m.path, "error", err)
		return err
	}

	metrics.ConfigReloads.WithLabelValues(ReloadStatusSuccess).Inc()
	log.Info(LogMsgConfigReloaded, "path", m.path, "levels", len(t.Levels))
	m.publish(t)
	return nil
}

// Save writes the live snapshot back to disk
func (m *Manager) Save(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if err := m.writeFile(m.Current()); err != nil {
		logger.FromContext(ctx).Error(LogMsgConfigSaveFailed, "path", m.path, "error", err)
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgConfigSaved, "path", m.path)
	return nil
}

// Update applies mutations to a copy of the live table, validates the
// result, persists it and publishes it. A mutation or validation error
// leaves the live snapshot untouched. A failed write is only logged; the
// new snapshot is still published.
func (m *Manager) Update(ctx context.Context, mutations ...Mutation) (*Table, error) {
	log := logger.FromContext(ctx)

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	next := m.Current().Clone()
	for _, mutate := range mutations {
		if err := mutate(next); err != nil {
			return nil, err
		}
	}
	next.normalize()
	if err := next.Validate(); err != nil {
		return nil, err
	}

	if err := m.writeFile(next); err != nil {
		log.Error(LogMsgConfigSaveFailed, "path", m.path, "error", err)
	}
	log.Info(LogMsgConfigUpdated, "path", m.path)
	m.publish(next)
	return next, nil
}

// Subscribe returns a channel receiving every snapshot published after the
// call. Only the latest pending snapshot is kept for slow readers.
// The returned func unsubscribes and closes the channel.
func (m *Manager) Subscribe() (<-chan *Table, func()) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan *Table, 1)
	m.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.subsMu.Lock()
			defer m.subsMu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}
}

func (m *Manager) publish(t *Table) {
	m.current.Store(t)

	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- t:
		default:
			logger.FromContext(context.Background()).Debug(LogMsgSubscriberLagging)
			select {
			case <-ch:
			default:
			}
			ch <- t
		}
	}
}

func (m *Manager) readFile() (*Table, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFailed, err)
	}
	t, err := Decode(m.path, data)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (m *Manager) writeFile(t *Table) error {
	data, err := Encode(m.path, t)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(m.path); dir != "" {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf(ErrMsgCreateConfigDir, err)
		}
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePermissions); err != nil {
		return fmt.Errorf(ErrMsgWriteConfigFailed, err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf(ErrMsgWriteConfigFailed, err)
	}
	return nil
}
