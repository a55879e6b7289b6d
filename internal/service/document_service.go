package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/knaito/naraigoto-api/internal/models"
	"github.com/knaito/naraigoto-api/internal/planner"
	"github.com/knaito/naraigoto-api/internal/repository"
	"github.com/knaito/naraigoto-api/pkg/jobs"
)

// documentCacheKey holds the whole document; derived views are recomputed on
// demand, so one key is enough.
const documentCacheKey = "planner:document"

// SyncJobType labels the background job that mirrors the document to the
// configured spreadsheet.
const SyncJobType = "sheets_sync"

// DocumentCache is the read-through cache contract for the document.
type DocumentCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type syncEnqueuer interface {
	Enqueue(job jobs.Job) error
}

// DocumentService owns the single planning document. All mutations funnel
// through Mutate so concurrent API requests serialize on one lock, matching
// the whole-document replacement model of the store.
type DocumentService struct {
	repo    repository.DocumentRepository
	cache   DocumentCache
	queue   syncEnqueuer
	metrics *MetricsService
	logger  *zap.Logger

	cacheTTL time.Duration
	mu       sync.Mutex
}

// NewDocumentService constructs the service. cache and queue may be nil;
// caching and spreadsheet mirroring are then disabled.
func NewDocumentService(repo repository.DocumentRepository, cache DocumentCache, queue syncEnqueuer, metrics *MetricsService, cacheTTL time.Duration, logger *zap.Logger) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &DocumentService{
		repo:     repo,
		cache:    cache,
		queue:    queue,
		metrics:  metrics,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// SetSyncQueue installs the mirror job queue after construction. The queue's
// handler needs the sync service, which needs this service, so the queue is
// wired in last.
func (s *DocumentService) SetSyncQueue(queue syncEnqueuer) {
	s.queue = queue
}

// Load returns the current document. A missing store yields the seed
// document. Documents still carrying single-letter identifiers are migrated
// to the assignee-prefixed scheme and persisted before being returned.
func (s *DocumentService) Load(ctx context.Context) (*models.Document, error) {
	if s.cache != nil {
		var cached models.Document
		if err := s.cache.Get(ctx, documentCacheKey, &cached); err == nil {
			s.metrics.RecordCacheLookup(true)
			return &cached, nil
		}
		s.metrics.RecordCacheLookup(false)
	}

	start := time.Now()
	doc, err := s.repo.Load(ctx)
	s.metrics.ObserveStoreOperation("load", time.Since(start))
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			s.logger.Info("no stored document, using seed")
			doc = models.Seed()
		} else {
			return nil, err
		}
	}
	normalize(doc)

	if planner.MigrateLegacyIDs(doc) {
		s.logger.Info("migrated legacy lesson identifiers")
		if err := s.persist(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	s.fillCache(ctx, doc)
	return doc, nil
}

// Save persists the document, refreshes the cache and queues a spreadsheet
// mirror.
func (s *DocumentService) Save(ctx context.Context, doc *models.Document) error {
	normalize(doc)
	return s.persist(ctx, doc)
}

// Replace swaps in a full document supplied by the client, the whole-document
// save path the legacy frontend uses.
func (s *DocumentService) Replace(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Save(ctx, doc)
}

// Mutate loads the document, applies fn and saves the result under the
// service lock. fn returning an error aborts without saving.
func (s *DocumentService) Mutate(ctx context.Context, fn func(doc *models.Document) error) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) persist(ctx context.Context, doc *models.Document) error {
	start := time.Now()
	err := s.repo.Save(ctx, doc)
	s.metrics.ObserveStoreOperation("save", time.Since(start))
	if err != nil {
		return err
	}
	s.fillCache(ctx, doc)
	s.enqueueSync()
	return nil
}

func (s *DocumentService) fillCache(ctx context.Context, doc *models.Document) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, documentCacheKey, doc, s.cacheTTL); err != nil {
		s.logger.Warn("document cache write failed", zap.Error(err))
	}
}

func (s *DocumentService) enqueueSync() {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(jobs.NewJob(SyncJobType, nil)); err != nil {
		s.logger.Warn("failed to queue spreadsheet sync", zap.Error(err))
	}
}

// normalize repairs structural holes in stored or client-supplied documents
// so downstream code can index maps without nil checks.
func normalize(doc *models.Document) {
	if doc.Family == nil {
		doc.Family = map[string]*models.FamilyMember{}
	}
	if doc.Lessons == nil {
		doc.Lessons = []*models.Lesson{}
	}
	if doc.Patterns == nil {
		doc.Patterns = map[string]*models.Pattern{}
	}
	for _, key := range models.PatternKeys {
		pat := doc.Patterns[key]
		if pat == nil {
			pat = &models.Pattern{Name: "パターン" + key}
			doc.Patterns[key] = pat
		}
		if pat.IDs == nil {
			pat.IDs = []string{}
		}
	}
}
