// Package board holds the emotion list and the small amount of UI navigation state that goes
// with it. A Board is owned by one goroutine (the TUI loop or a CLI command); it is not safe
// for concurrent use.
package board

import (
	"fmt"
	"slices"
	"time"

	"emoboard/internal/model"
	"emoboard/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Board struct {
	kv    store.KV
	key   string
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	emotions []model.Emotion

	addModalOpen bool
	view         model.View
	statsFilter  model.StatsFilter

	listeners []listener
	nextSubID int

	loadErr *LoadError
	saveErr error
}

type Option func(*Board)

func WithLogger(l *zap.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(b *Board) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// WithKey changes the key the snapshot is stored under (default store.DefaultKey).
func WithKey(key string) Option {
	return func(b *Board) {
		if key != "" {
			b.key = key
		}
	}
}

// New builds a Board over kv and restores the last snapshot. A snapshot that cannot be read
// leaves the board empty; see LoadErr.
func New(kv store.KV, opts ...Option) *Board {
	b := &Board{
		kv:          kv,
		key:         store.DefaultKey,
		log:         zap.NewNop(),
		now:         time.Now,
		newID:       uuid.NewString,
		emotions:    []model.Emotion{},
		view:        model.ViewBoard,
		statsFilter: model.FilterToday,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.emotions = b.loadInitial()
	return b
}

// AddEmotion records a new emotion at the front of the list and closes the add modal.
// typ and comment are expected to have passed model.ValidateInput.
func (b *Board) AddEmotion(typ model.EmotionType, comment string) model.Emotion {
	st, _ := model.StyleFor(typ)
	e := model.Emotion{
		ID:        b.newID(),
		Type:      typ,
		Comment:   comment,
		Timestamp: b.now().UnixMilli(),
		Color:     st.Color,
		Icon:      st.Icon,
	}
	b.emotions = slices.Insert(b.emotions, 0, e)
	b.save()
	b.addModalOpen = false
	b.notify(Event{Kind: EventAdded, EmotionID: e.ID})
	return e
}

// DeleteEmotion removes the record with id. It reports whether a record was removed; an
// unknown id is not an error.
func (b *Board) DeleteEmotion(id string) bool {
	before := len(b.emotions)
	b.emotions = slices.DeleteFunc(b.emotions, func(e model.Emotion) bool { return e.ID == id })
	removed := len(b.emotions) != before
	b.save()
	b.notify(Event{Kind: EventDeleted, EmotionID: id})
	return removed
}

// ReorderEmotions moves the record at from so that it ends up at index to.
// Both indices must be within [0, Len()); otherwise nothing changes and ErrIndexOutOfRange
// is returned.
func (b *Board) ReorderEmotions(from, to int) error {
	n := len(b.emotions)
	if from < 0 || from >= n || to < 0 || to >= n {
		err := fmt.Errorf("%w: move %d -> %d with %d emotions", ErrIndexOutOfRange, from, to, n)
		b.log.DPanic("reorder rejected",
			zap.Int("from", from),
			zap.Int("to", to),
			zap.Int("len", n),
			zap.Error(err))
		return err
	}
	moved := b.emotions[from]
	next := slices.Delete(slices.Clone(b.emotions), from, from+1)
	b.emotions = slices.Insert(next, to, moved)
	b.save()
	b.notify(Event{Kind: EventReordered, EmotionID: moved.ID, From: from, To: to})
	return nil
}

func (b *Board) ClearAllEmotions() {
	b.emotions = []model.Emotion{}
	b.save()
	b.notify(Event{Kind: EventCleared})
}

func (b *Board) OpenAddModal() {
	b.addModalOpen = true
	b.notify(Event{Kind: EventModal})
}

func (b *Board) CloseAddModal() {
	b.addModalOpen = false
	b.notify(Event{Kind: EventModal})
}

func (b *Board) SetCurrentView(v model.View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidView, v)
	}
	b.view = v
	b.notify(Event{Kind: EventView})
	return nil
}

func (b *Board) SetStatsFilter(f model.StatsFilter) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatsFilter, f)
	}
	b.statsFilter = f
	b.notify(Event{Kind: EventFilter})
	return nil
}

// Emotions returns a copy of the list in display order.
func (b *Board) Emotions() []model.Emotion {
	return slices.Clone(b.emotions)
}

func (b *Board) Len() int { return len(b.emotions) }

func (b *Board) Find(id string) (model.Emotion, int, bool) {
	for i, e := range b.emotions {
		if e.ID == id {
			return e, i, true
		}
	}
	return model.Emotion{}, -1, false
}

func (b *Board) CurrentView() model.View { return b.view }

func (b *Board) IsAddModalOpen() bool { return b.addModalOpen }

func (b *Board) StatsFilter() model.StatsFilter { return b.statsFilter }

// Now is the board's clock; views use it so tests can pin time.
func (b *Board) Now() time.Time { return b.now() }
