// Package store holds the in-memory resume document and persists it with a debounced autosave.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultKey is the storage key holding the serialized document
	DefaultKey = "resume-data"
	// DefaultDelay is the autosave quiet period
	DefaultDelay = 500 * time.Millisecond

	saveTimeout = 10 * time.Second
)

// LoadResult reports the outcome of Load
type LoadResult int

const (
	// Restored means the persisted document replaced the snapshot
	Restored LoadResult = iota
	// NothingSaved means storage holds no document under the key
	NothingSaved
	// Unusable means a value exists but could not be read or parsed; the snapshot is unchanged
	Unusable
)

func (r LoadResult) String() string {
	switch r {
	case Restored:
		return "restored"
	case NothingSaved:
		return "nothing_saved"
	default:
		return "unusable"
	}
}

// Options configures a Store
type Options struct {
	Key    string
	Delay  time.Duration
	Logger *logrus.Logger
}

// Store owns the current document snapshot.
// Every mutation replaces the snapshot wholesale and schedules one trailing-edge save.
type Store struct {
	storage storage.Storage
	key     string
	delay   time.Duration
	log     *logrus.Entry

	mu    sync.Mutex
	doc   types.ResumeData
	timer *time.Timer
	gen   uint64

	// saveMu orders writes and deletes against the backend
	saveMu sync.Mutex
}

// New returns a Store holding the blank document
func New(backend storage.Storage, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		storage: backend,
		key:     opts.Key,
		delay:   opts.Delay,
		log:     logger.WithFields(logrus.Fields{"component": "store", "key": opts.Key}),
		doc:     types.Blank(),
	}
}

// Snapshot returns a deep copy of the current document
func (s *Store) Snapshot() types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Replace swaps in a whole new document. Like every write path it passes through editor.Sanitize.
func (s *Store) Replace(next types.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = editor.Sanitize(next)
	s.scheduleLocked()
}

// Update replaces one top-level section. value must have the section's Go type.
func (s *Store) Update(section types.Section, value any) error {
	_, err := s.Apply(func(d types.ResumeData) (types.ResumeData, error) {
		return d.With(section, value)
	})
	return err
}

// Apply runs a pure edit against the snapshot and stores its result.
// A failing edit leaves the snapshot untouched and schedules nothing.
func (s *Store) Apply(edit func(types.ResumeData) (types.ResumeData, error)) (types.ResumeData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := edit(s.doc)
	if err != nil {
		return s.doc.Clone(), err
	}
	s.doc = editor.Sanitize(next)
	s.scheduleLocked()
	return s.doc.Clone(), nil
}

// scheduleLocked cancels any pending save and starts a new quiet period. Caller holds mu.
func (s *Store) scheduleLocked() {
	s.cancelLocked()
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() { s.fire(gen) })
}

// cancelLocked drops the pending save, including one whose timer already fired. Caller holds mu.
func (s *Store) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *Store) fire(gen uint64) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	doc := s.doc.Clone()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	s.write(ctx, doc)
}

// Pending reports whether an autosave is scheduled
func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Save writes the current snapshot immediately, superseding any pending autosave.
// Failures are logged, never returned.
func (s *Store) Save(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	s.cancelLocked()
	doc := s.doc.Clone()
	s.mu.Unlock()

	s.write(ctx, doc)
}

// Flush runs a pending autosave now. It does nothing when no save is pending.
func (s *Store) Flush(ctx context.Context) {
	if s.Pending() {
		s.Save(ctx)
	}
}

func (s *Store) write(ctx context.Context, doc types.ResumeData) {
	start := time.Now()
	data, err := json.Marshal(doc)
	if err != nil {
		s.log.WithError(err).Error("failed to serialize resume data")
		return
	}
	if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
		s.log.WithError(err).Error("failed to save resume data")
		return
	}
	s.log.WithFields(logrus.Fields{
		"bytes":    len(data),
		"duration": time.Since(start).String(),
	}).Debug("resume saved")
}

// Load restores the persisted document. Errors are logged and reported as a LoadResult;
// on anything but Restored the snapshot is unchanged.
func (s *Store) Load(ctx context.Context) LoadResult {
	raw, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Info("no saved resume to restore")
		return NothingSaved
	}
	if err != nil {
		s.log.WithError(err).Error("failed to load resume data")
		return Unusable
	}

	if err := schemas.ValidateDocument(raw); err != nil {
		s.log.WithError(err).Warn("saved resume data is malformed")
		return Unusable
	}
	var doc types.ResumeData
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.log.WithError(err).Warn("saved resume data is malformed")
		return Unusable
	}

	s.mu.Lock()
	s.doc = editor.Sanitize(doc)
	s.mu.Unlock()
	return Restored
}

// Reset replaces the snapshot with the blank document, cancels any pending save
// and deletes the persisted value.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.cancelLocked()
	s.doc = types.Blank()
	s.mu.Unlock()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.log.WithError(err).Error("failed to clear saved resume data")
	}
}

// Close flushes a pending save and releases the backend
func (s *Store) Close(ctx context.Context) error {
	s.Flush(ctx)
	return s.storage.Close()
}
