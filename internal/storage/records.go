package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/runnerr0/mindwell/internal/errs"
)

// Records reads and writes whole JSON documents on top of a KV.
type Records struct {
	kv     KV
	logger *zap.Logger
}

// NewRecords wraps kv. A nil logger discards warnings.
func NewRecords(kv KV, logger *zap.Logger) *Records {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Records{kv: kv, logger: logger}
}

// KV returns the underlying store.
func (r *Records) KV() KV {
	return r.kv
}

// Load decodes the value under key into dst, which must be a non-nil
// pointer. It reports false when the key is absent or its value is corrupt;
// a corrupt value is logged and otherwise treated as no prior data, leaving
// dst untouched. Only store I/O failures are returned.
func (r *Records) Load(ctx context.Context, key string, dst any) (bool, error) {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false, fmt.Errorf("load %s: destination must be a non-nil pointer, got %T", key, dst)
	}

	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return false, nil
	}

	// json.Unmarshal fills what it can before a type error, so decode into a
	// scratch value first and touch dst only once the whole document fits.
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal([]byte(raw), scratch.Interface()); err != nil {
		corrupt := &errs.CorruptValueError{Key: key, Err: err}
		r.logger.Warn("ignoring stored value", zap.String("key", key), zap.Error(corrupt))
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save encodes v and overwrites the value under key.
func (r *Records) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Set(ctx, key, string(b))
}

// Purge deletes keys and, when the store keeps an audit trail, records the
// action. It returns the keys that held a value.
func (r *Records) Purge(ctx context.Context, keys []string) ([]string, error) {
	var removed []string
	for _, k := range keys {
		_, ok, err := r.kv.Get(ctx, k)
		if err != nil {
			return removed, err
		}
		if err := r.kv.Delete(ctx, k); err != nil {
			return removed, err
		}
		if ok {
			removed = append(removed, k)
		}
	}

	if a, ok := r.kv.(Auditor); ok {
		detail := fmt.Sprintf("keys=%s", strings.Join(removed, ","))
		if err := a.Audit(ctx, "purge", detail); err != nil {
			return removed, fmt.Errorf("audit purge: %w", err)
		}
	}

	r.logger.Info("purged user data", zap.Strings("keys", removed))
	return removed, nil
}

// StatsProvider is implemented by stores that can report per-key sizes.
type StatsProvider interface {
	Stats(ctx context.Context) (*Stats, error)
}
