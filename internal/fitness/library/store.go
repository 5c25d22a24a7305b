package library

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=library_test

type libraryRepo interface {
	List(ctx context.Context) ([]strength.ExerciseDocument, error)
	Add(ctx context.Context, doc strength.ExerciseDocument) (strength.ExerciseDocument, error)
	Update(ctx context.Context, doc strength.ExerciseDocument) (strength.ExerciseDocument, error)
	Delete(ctx context.Context, id int) error
}

const (
	cacheKey       = "exercise-library"
	cacheSizeBytes = 4 * 1024 * 1024
)

// Store serves the exercise library from a process-local cache and keeps the
// cache consistent with every write that goes through it.
type Store struct {
	repo     libraryRepo
	cache    *freecache.Cache
	cacheTTL time.Duration
}

func NewStore(repo libraryRepo, cacheTTL time.Duration) *Store {
	return &Store{
		repo:     repo,
		cache:    freecache.NewCache(cacheSizeBytes),
		cacheTTL: cacheTTL,
	}
}

// Documents returns all library entries. An empty table yields the defaults,
// so name resolution works before the library is seeded.
func (s *Store) Documents(ctx context.Context) (_ []strength.ExerciseDocument, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.library.documents")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, cacheErr := s.cache.Get([]byte(cacheKey)); cacheErr == nil {
		var docs []strength.ExerciseDocument
		unmarshalErr := json.Unmarshal(cached, &docs)
		if unmarshalErr == nil {
			return docs, nil
		}
		log.Errorf("unmarshal cached exercise library: %s", unmarshalErr)
	}

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercise library: %w", err)
	}
	if len(docs) == 0 {
		docs = Defaults()
	}

	docsJson, err := json.Marshal(docs)
	if err != nil {
		log.Errorf("marshal exercise library: %s", err)
		return docs, nil
	}
	if err := s.cache.Set([]byte(cacheKey), docsJson, int(s.cacheTTL.Seconds())); err != nil {
		log.Errorf("cache exercise library: %s", err)
	}

	return docs, nil
}

// Library is the resolver built from Documents.
func (s *Store) Library(ctx context.Context) (*strength.Library, error) {
	docs, err := s.Documents(ctx)
	if err != nil {
		return nil, err
	}
	return strength.NewLibrary(docs), nil
}

func (s *Store) Add(ctx context.Context, doc strength.ExerciseDocument) (strength.ExerciseDocument, error) {
	defer s.Invalidate()
	return s.repo.Add(ctx, doc)
}

func (s *Store) Update(ctx context.Context, doc strength.ExerciseDocument) (strength.ExerciseDocument, error) {
	defer s.Invalidate()
	return s.repo.Update(ctx, doc)
}

func (s *Store) Delete(ctx context.Context, id int) error {
	defer s.Invalidate()
	return s.repo.Delete(ctx, id)
}

func (s *Store) Invalidate() {
	s.cache.Del([]byte(cacheKey))
}

// Seed inserts the default exercises when the library table is empty.
func (s *Store) Seed(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.library.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	existing, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list exercise library: %w", err)
	}
	if len(existing) > 0 {
		log.Debugf("exercise library has %d entries, not seeding", len(existing))
		return nil
	}

	defer s.Invalidate()
	for _, doc := range Defaults() {
		if _, err := s.repo.Add(ctx, doc); err != nil {
			return fmt.Errorf("seed exercise [%s]: %w", doc.Name, err)
		}
	}
	log.Infof("exercise library seeded with %d defaults", len(Defaults()))
	return nil
}
