package levelstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/metrics"
)

// FileStore keeps every record in memory and rewrites the whole JSON
// document on each mutation:
//
//	{"<player uuid>": {"<canonical item id>": <level>}}
type FileStore struct {
	path string

	mu   sync.RWMutex
	data map[uuid.UUID]map[string]int
}

// OpenFile loads the document at path. A missing or malformed document
// yields an empty store; malformed individual records are skipped.
func OpenFile(ctx context.Context, path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[uuid.UUID]map[string]int),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Info(LogMsgStoreMissing, "path", path)
		return s, nil
	}
	if err != nil {
		metrics.LevelStoreErrors.WithLabelValues(OpLoad).Inc()
		return nil, fmt.Errorf(ErrMsgReadStoreFailed, err)
	}

	s.data = decodeTolerant(logger.FromContext(ctx), raw)
	logger.FromContext(ctx).Info(LogMsgStoreLoaded, "path", path, "players", len(s.data))
	return s, nil
}

// Get returns the stored level, 0 when absent
func (s *FileStore) Get(_ context.Context, player uuid.UUID, itemID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[player][domain.CanonicalItemID(itemID)], nil
}

// Set upserts the record and persists synchronously. On a write error the
// in-memory record is kept and the error returned.
func (s *FileStore) Set(ctx context.Context, player uuid.UUID, itemID string, level int) error {
	if level < 0 {
		return fmt.Errorf("%w: "+ErrMsgNegativeLevelFmt, domain.ErrInvalidInput, level)
	}
	if level == 0 {
		return s.Remove(ctx, player, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.data[player]
	if !ok {
		records = make(map[string]int)
		s.data[player] = records
	}
	records[domain.CanonicalItemID(itemID)] = level
	return s.persistLocked(ctx)
}

// Remove deletes the record, drops an emptied player, and persists synchronously
func (s *FileStore) Remove(ctx context.Context, player uuid.UUID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.data[player]
	if !ok {
		return nil
	}
	key := domain.CanonicalItemID(itemID)
	if _, ok := records[key]; !ok {
		return nil
	}
	delete(records, key)
	if len(records) == 0 {
		delete(s.data, player)
	}
	return s.persistLocked(ctx)
}

// GetAll returns a snapshot copy of one player's records
func (s *FileStore) GetAll(_ context.Context, player uuid.UUID) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.data[player]))
	for item, level := range s.data[player] {
		out[item] = level
	}
	return out, nil
}

// Players returns how many players have records
func (s *FileStore) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Close writes the document one last time
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(context.Background())
}

func (s *FileStore) persistLocked(ctx context.Context) error {
	doc := make(map[string]map[string]int, len(s.data))
	for player, records := range s.data {
		doc[player.String()] = records
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return s.persistFailed(ctx, fmt.Errorf(ErrMsgEncodeStoreFailed, err))
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return s.persistFailed(ctx, fmt.Errorf(ErrMsgCreateStoreDir, err))
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), FilePermissions); err != nil {
		return s.persistFailed(ctx, fmt.Errorf(ErrMsgWriteStoreFailed, err))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return s.persistFailed(ctx, fmt.Errorf(ErrMsgWriteStoreFailed, err))
	}
	return nil
}

func (s *FileStore) persistFailed(ctx context.Context, err error) error {
	metrics.LevelStoreErrors.WithLabelValues(OpPersist).Inc()
	logger.FromContext(ctx).Error(LogMsgPersistFailed, "path", s.path, "error", err)
	return err
}

// decodeTolerant parses the document record by record. Invalid player ids,
// non-object player entries and non-integer or non-positive levels are
// skipped with a warning instead of failing the whole load.
func decodeTolerant(log *slog.Logger, raw []byte) map[uuid.UUID]map[string]int {
	out := make(map[uuid.UUID]map[string]int)

	var players map[string]json.RawMessage
	if err := json.Unmarshal(raw, &players); err != nil {
		metrics.LevelStoreErrors.WithLabelValues(OpLoad).Inc()
		log.Warn(LogMsgStoreMalformed, "error", err)
		return out
	}

	for key, body := range players {
		player, err := uuid.Parse(key)
		if err != nil {
			log.Warn(LogMsgSkippedPlayerKey, "key", key)
			continue
		}

		var items map[string]json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			log.Warn(LogMsgSkippedPlayerRecords, "player", key, "error", err)
			continue
		}

		records := make(map[string]int, len(items))
		for item, value := range items {
			level, ok := parseLevel(value)
			if !ok {
				log.Warn(LogMsgSkippedLevel, "player", key, "item", item, "value", string(value))
				continue
			}
			records[domain.CanonicalItemID(item)] = level
		}
		if len(records) > 0 {
			out[player] = records
		}
	}
	return out
}

func parseLevel(value json.RawMessage) (int, bool) {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()

	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return 0, false
	}
	level, err := n.Int64()
	if err != nil || level <= 0 {
		return 0, false
	}
	return int(level), true
}
