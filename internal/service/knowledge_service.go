package service

import (
	"context"
	"log"

	"sbindex/internal/cache"
	"sbindex/internal/model"
	"sbindex/internal/repository"
)

// KnowledgeService fronts the knowledge base with a Redis search cache
type KnowledgeService struct {
	repo  repository.KnowledgeRepo
	cache cache.KnowledgeCache
}

// NewKnowledgeService creates a new knowledge service
func NewKnowledgeService(repo repository.KnowledgeRepo, knowledgeCache cache.KnowledgeCache) *KnowledgeService {
	return &KnowledgeService{repo: repo, cache: knowledgeCache}
}

// Search finds rows of one source type matching any keyword
func (s *KnowledgeService) Search(ctx context.Context, sourceType string, keywords []string, limit int64) ([]model.KnowledgeRow, error) {
	if s.cache != nil {
		rows, hit, err := s.cache.Get(ctx, sourceType, keywords)
		if err != nil {
			log.Printf("knowledge cache read failed: %v", err)
		} else if hit {
			return rows, nil
		}
	}

	rows, err := s.repo.Search(ctx, sourceType, keywords, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sourceType, keywords, rows); err != nil {
			log.Printf("knowledge cache write failed: %v", err)
		}
	}
	return rows, nil
}

// SearchForReport returns blog and youtube rows for report augmentation.
// An empty knowledge base yields empty slices, not an error.
func (s *KnowledgeService) SearchForReport(ctx context.Context, keywords []string, limitPerSource int) ([]model.KnowledgeRow, []model.KnowledgeRow, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}
	if total == 0 {
		return nil, nil, nil
	}

	blog, err := s.Search(ctx, model.SourceBlog, keywords, int64(limitPerSource))
	if err != nil {
		return nil, nil, err
	}
	youtube, err := s.Search(ctx, model.SourceYoutube, keywords, int64(limitPerSource))
	if err != nil {
		return nil, nil, err
	}
	return blog, youtube, nil
}

// Add stores one collected row, skipping URLs already present
func (s *KnowledgeService) Add(ctx context.Context, row *model.KnowledgeRow) (bool, error) {
	return s.repo.Upsert(ctx, row)
}
