package board

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"emoboard/internal/model"

	"go.uber.org/zap"
)

// SchemaVersion is written into every snapshot. Version 0 is the unversioned bare JSON array
// the browser app stored.
const SchemaVersion = 1

type snapshot struct {
	Version  int             `json:"version"`
	Emotions []model.Emotion `json:"emotions"`
}

// EncodeSnapshot returns the bytes stored under the board's key.
func EncodeSnapshot(emotions []model.Emotion) ([]byte, error) {
	if emotions == nil {
		emotions = []model.Emotion{}
	}
	return json.Marshal(snapshot{Version: SchemaVersion, Emotions: emotions})
}

// DecodeSnapshot accepts both the versioned envelope and the legacy bare array.
func DecodeSnapshot(b []byte) ([]model.Emotion, int, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, 0, errors.New("empty snapshot")
	}

	if b[0] == '[' {
		var legacy []model.Emotion
		if err := json.Unmarshal(b, &legacy); err != nil {
			return nil, 0, err
		}
		return legacy, 0, nil
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, 0, err
	}
	if snap.Version > SchemaVersion {
		return nil, snap.Version, &versionError{got: snap.Version}
	}
	return snap.Emotions, snap.Version, nil
}

type versionError struct {
	got int
}

func (e *versionError) Error() string {
	return fmt.Sprintf("snapshot version %d is newer than supported version %d", e.got, SchemaVersion)
}

// LoadErr reports why the last load (New or Reload) failed, if it did.
func (b *Board) LoadErr() *LoadError { return b.loadErr }

// SaveErr is the error from the most recent snapshot write, nil once a write succeeds.
func (b *Board) SaveErr() error { return b.saveErr }

// loadInitial falls back to an empty list when the snapshot cannot be read.
func (b *Board) loadInitial() []model.Emotion {
	list, lerr := b.load()
	b.loadErr = lerr
	if lerr != nil {
		b.log.Error("failed to load emotions; starting empty",
			zap.String("kind", string(lerr.Kind)),
			zap.String("key", b.key),
			zap.Error(lerr.Err))
		return []model.Emotion{}
	}
	return list
}

// Reload re-reads the snapshot, replacing the in-memory list. Subscribers hear about it only
// when the list actually changed. A failed read keeps the current list so the next save
// cannot overwrite the store with an empty one.
func (b *Board) Reload() {
	next, lerr := b.load()
	b.loadErr = lerr
	if lerr != nil {
		b.log.Warn("failed to reload emotions; keeping current list",
			zap.String("kind", string(lerr.Kind)),
			zap.String("key", b.key),
			zap.Int("emotions", len(b.emotions)),
			zap.Error(lerr.Err))
		return
	}
	if slices.Equal(next, b.emotions) {
		return
	}
	b.emotions = next
	b.notify(Event{Kind: EventReloaded})
}

func (b *Board) load() ([]model.Emotion, *LoadError) {
	raw, ok, err := b.kv.Get(b.key)
	if err != nil {
		return nil, &LoadError{Kind: LoadErrorRead, Key: b.key, Err: err}
	}
	if !ok {
		return []model.Emotion{}, nil
	}

	list, version, err := DecodeSnapshot(raw)
	if err != nil {
		var ve *versionError
		if errors.As(err, &ve) {
			return nil, &LoadError{Kind: LoadErrorVersion, Key: b.key, Err: err}
		}
		return nil, &LoadError{Kind: LoadErrorDecode, Key: b.key, Err: err}
	}
	if version < SchemaVersion {
		b.log.Info("migrated emotion snapshot",
			zap.String("key", b.key),
			zap.Int("from", version),
			zap.Int("to", SchemaVersion),
			zap.Int("emotions", len(list)))
	}
	return b.dedupe(list), nil
}

// dedupe keeps the first record for each id so ids stay unique after a hand-edited or merged
// snapshot. Records of unknown type are dropped so stats counts always sum to the list length.
func (b *Board) dedupe(list []model.Emotion) []model.Emotion {
	out := make([]model.Emotion, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, e := range list {
		if !e.Type.Valid() {
			b.log.Warn("dropping emotion of unknown type", zap.String("id", e.ID), zap.String("type", string(e.Type)))
			continue
		}
		if seen[e.ID] {
			b.log.Warn("dropping duplicate emotion id", zap.String("id", e.ID))
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

func (b *Board) save() {
	raw, err := EncodeSnapshot(b.emotions)
	if err == nil {
		err = b.kv.Set(b.key, raw)
	}
	b.saveErr = err
	if err != nil {
		b.log.Error("failed to save emotions",
			zap.String("key", b.key),
			zap.Int("emotions", len(b.emotions)),
			zap.Error(err))
	}
}
