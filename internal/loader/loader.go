// Package loader fetches the survey collection exactly once per process
// and holds it for read-only use.
package loader

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/02loveslollipop/mirpur-road-survey/internal/metrics"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

// Source provides the raw survey GeoJSON document.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// Loader performs a single fetch of its source. A failed fetch is logged
// and leaves the collection unset; it is never retried.
type Loader struct {
	source Source
	logger *slog.Logger

	once sync.Once
	done chan struct{}
	coll atomic.Pointer[survey.Collection]
	err  error
}

// New returns a loader for source.
func New(source Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		source: source,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Load fetches and decodes the collection on the first call. Later calls,
// concurrent or not, wait for that first attempt and return its result.
func (l *Loader) Load(ctx context.Context) (*survey.Collection, error) {
	l.once.Do(func() {
		defer close(l.done)
		l.err = l.load(ctx)
	})
	<-l.done
	coll, _ := l.Collection()
	return coll, l.err
}

func (l *Loader) load(ctx context.Context) error {
	start := time.Now()
	name := l.source.Name()

	data, err := l.source.Fetch(ctx)
	if err == nil {
		var coll *survey.Collection
		coll, err = survey.Decode(data)
		if err == nil {
			l.coll.Store(coll)
			metrics.RecordLoad(name, time.Since(start), coll.Len(), nil)
			l.logger.Info("survey collection loaded",
				"source", name,
				"features", coll.Len(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}

	metrics.RecordLoad(name, time.Since(start), 0, err)
	l.logger.Error("survey collection load failed",
		"source", name,
		"error", err,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return err
}

// Start runs Load in the background. Callers that need the collection
// before it arrives simply see none.
func (l *Loader) Start(ctx context.Context) {
	go func() {
		_, _ = l.Load(ctx)
	}()
}

// Collection returns the loaded collection, if any.
func (l *Loader) Collection() (*survey.Collection, bool) {
	coll := l.coll.Load()
	return coll, coll != nil
}

// Loaded reports whether a collection is available.
func (l *Loader) Loaded() bool {
	return l.coll.Load() != nil
}

// Done is closed once the single load attempt has finished.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Err returns the load error once the attempt has finished, nil before.
func (l *Loader) Err() error {
	select {
	case <-l.done:
		return l.err
	default:
		return nil
	}
}
