package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/logging"
	"github.com/manav03panchal/studinest/internal/metrics"
)

// DefaultKeyPrefix is prepended to every slice name to form a medium key.
const DefaultKeyPrefix = "studinest-"

// StoreOptions configures a Store. Zero fields take defaults.
type StoreOptions struct {
	Prefix   string
	Recorder metrics.Recorder
	Revivers Revivers
	Now      func() time.Time
}

// Store reads and writes whole state slices as JSON text on a Medium.
// Each slice lives under its own key; there is no cross-key transaction.
type Store struct {
	medium   Medium
	prefix   string
	recorder metrics.Recorder
	revivers Revivers
	now      func() time.Time
}

// NewStore creates a store on medium.
func NewStore(medium Medium, opts StoreOptions) *Store {
	s := &Store{
		medium:   medium,
		prefix:   opts.Prefix,
		recorder: opts.Recorder,
		revivers: opts.Revivers,
		now:      opts.Now,
	}
	if s.prefix == "" {
		s.prefix = DefaultKeyPrefix
	}
	if s.recorder == nil {
		s.recorder = metrics.NoopRecorder{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.revivers == nil {
		s.revivers = DefaultRevivers(s.now)
	}
	return s
}

// Medium returns the underlying medium.
func (s *Store) Medium() Medium {
	return s.medium
}

// Key returns the medium key of a slice.
func (s *Store) Key(slice string) string {
	return s.prefix + slice
}

// Raw returns the stored text of a slice without decoding it.
func (s *Store) Raw(slice string) ([]byte, error) {
	return s.medium.Get(s.Key(slice))
}

// ReadInto decodes the stored value of slice into v, reviving registered
// fields on the way. It reports false with a nil error when the key is
// absent. Text that is not valid JSON, or that does not fit v, yields
// ErrStorageCorrupted.
func (s *Store) ReadInto(slice string, v any) (bool, error) {
	key := s.Key(slice)

	raw, err := s.medium.Get(key)
	if err != nil {
		if IsErrKeyNotFound(err) {
			s.recorder.IncRead(key, metrics.ReadMiss)
			return false, nil
		}
		s.recorder.IncRead(key, metrics.ReadError)
		logging.Error("storage read failed", logging.KeyStoreKey, key, logging.KeyError, err)
		return false, errors.NewSystemErrorWithOp("read "+key, "storage medium failed", err)
	}

	if err := s.decode(raw, v); err != nil {
		s.recorder.IncRead(key, metrics.ReadCorrupt)
		logging.Warn("stored value is not valid, using default",
			logging.KeyStoreKey, key,
			logging.KeyBytes, len(raw),
			logging.KeyError, err,
		)
		return false, fmt.Errorf("%w: %s: %v", errors.ErrStorageCorrupted, key, err)
	}

	s.recorder.IncRead(key, metrics.ReadHit)
	return true, nil
}

// decode parses raw into a generic tree, applies the revivers, then maps
// the tree onto v.
func (s *Store) decode(raw []byte, v any) error {
	if !json.Valid(raw) {
		return fmt.Errorf("invalid JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return err
	}

	tree = s.revivers.Apply(tree, s.recorder.IncRevival)

	revived, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(revived, v)
}

// Write serializes v and stores it under the slice key, replacing any
// previous content.
func (s *Store) Write(slice string, v any) error {
	key := s.Key(slice)

	data, err := json.Marshal(v)
	if err != nil {
		s.recorder.IncWrite(key, false)
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := s.medium.Set(key, data); err != nil {
		err = wrapQuotaError(err, key)
		s.recorder.IncWrite(key, false)
		logging.Error("storage write rejected",
			logging.KeyStoreKey, key,
			logging.KeyBytes, len(data),
			logging.KeyError, err,
		)
		return errors.NewSystemErrorWithOp("write "+key, "storage medium rejected the write", err)
	}

	s.recorder.IncWrite(key, true)
	s.recorder.ObserveWriteSize(key, len(data))
	logging.DebugLog("slice written", logging.KeyStoreKey, key, logging.KeyBytes, len(data))
	return nil
}

// Load reads a slice as a T. On a missing key, a corrupt value, or a
// medium failure it returns def unchanged. Load never writes.
func Load[T any](s *Store, slice string, def T) T {
	var v T
	found, err := s.ReadInto(slice, &v)
	if err != nil || !found {
		return def
	}
	return v
}
