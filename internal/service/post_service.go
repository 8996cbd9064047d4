package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"blogql-be/internal/cache"
	"blogql-be/internal/entities"
	"blogql-be/internal/models"
	"blogql-be/internal/repository"
)

// User-error messages returned by the post mutation guards. Each gate has
// exactly one message and the first failing gate wins.
const (
	msgForbiddenAccess = "Forbidden access."
	msgForbidden       = "Forbidden"
	msgPostNotFound    = "Post does not exist"
	msgCreateInput     = "You must provide a title and a content to create a post."
	msgUpdateInput     = "Need to have at least 1 field to update"
)

const postCacheTTL = time.Hour

// PostService defines the interface for post business logic. Mutations run a
// fixed sequence of gates (authentication, ownership, input, existence) and
// short-circuit on the first failure; the failure comes back as data in the
// payload, never as the error return.
type PostService interface {
	Create(ctx context.Context, userID *string, input *models.PostInput) (*models.PostPayload, error)
	Update(ctx context.Context, userID *string, postID string, input *models.PostInput) (*models.PostPayload, error)
	Delete(ctx context.Context, userID *string, postID string) (*models.PostPayload, error)
	Publish(ctx context.Context, userID *string, postID string, publish bool) (*models.PostPayload, error)
	CheckOwnership(ctx context.Context, userID, postID string) (*models.UserError, error)
	GetByID(ctx context.Context, userID *string, postID string) (*entities.Post, error)
	GetPublished(ctx context.Context) ([]*entities.Post, error)
	GetByAuthorID(ctx context.Context, authorID string, publishedOnly bool) ([]*entities.Post, error)
}

type postService struct {
	repo  repository.PostRepository
	cache cache.Cache
}

// NewPostService creates a new post service
func NewPostService(repo repository.PostRepository, cacheClient cache.Cache) PostService {
	svc := &postService{repo: repo}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func postCacheKey(postID string) string {
	return fmt.Sprintf("post:%s", postID)
}

// fetchPost reads a post through the cache, falling back to the repository.
// Returns (nil, nil) when the post does not exist.
func (s *postService) fetchPost(ctx context.Context, postID string) (*entities.Post, error) {
	if s.cache != nil {
		var cached entities.Post
		err := s.cache.GetJSON(ctx, postCacheKey(postID), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("Warning: post cache read failed: %v", err)
		}
	}

	post, err := s.repo.FindByID(ctx, postID)
	if err != nil || post == nil {
		return post, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, postCacheKey(postID), post, postCacheTTL); err != nil {
			log.Printf("Warning: post cache write failed: %v", err)
		}
	}

	return post, nil
}

// invalidate drops a post from the cache after a mutation
func (s *postService) invalidate(ctx context.Context, postID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, postCacheKey(postID)); err != nil {
		log.Printf("Warning: post cache invalidation failed: %v", err)
	}
}

// CheckOwnership verifies that the given user authored the given post.
// It returns a "Post does not exist" user error when the post is missing, a
// "Forbidden" user error when it belongs to someone else, and nil when the
// user owns it. The error return is a storage fault only.
func (s *postService) CheckOwnership(ctx context.Context, userID, postID string) (*models.UserError, error) {
	post, err := s.fetchPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return &models.UserError{Message: msgPostNotFound}, nil
	}
	if post.AuthorID != userID {
		return &models.UserError{Message: msgForbidden}, nil
	}
	return nil, nil
}

// Create creates a new unpublished post owned by the caller
func (s *postService) Create(ctx context.Context, userID *string, input *models.PostInput) (*models.PostPayload, error) {
	if userID == nil {
		return models.PostFailure(msgForbiddenAccess), nil
	}

	if input == nil || input.Title == nil || *input.Title == "" ||
		input.Content == nil || *input.Content == "" {
		return models.PostFailure(msgCreateInput), nil
	}

	post, err := s.repo.Create(ctx, *input.Title, *input.Content, *userID)
	if err != nil {
		return nil, err
	}

	return models.PostSuccess(post), nil
}

// Update applies a sparse patch to a post owned by the caller. Omitted fields
// are excluded from the write, never overwritten with empty values.
func (s *postService) Update(ctx context.Context, userID *string, postID string, input *models.PostInput) (*models.PostPayload, error) {
	if userID == nil {
		return models.PostFailure(msgForbiddenAccess), nil
	}

	userErr, err := s.CheckOwnership(ctx, *userID, postID)
	if err != nil {
		return nil, err
	}
	if userErr != nil {
		return models.PostFailure(userErr.Message), nil
	}

	patch := &models.PostPatch{}
	if input != nil {
		patch.Title = input.Title
		patch.Content = input.Content
	}
	if patch.Title == nil && patch.Content == nil {
		return models.PostFailure(msgUpdateInput), nil
	}

	// Existence is re-checked independently of the ownership guard
	existing, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return models.PostFailure(msgPostNotFound), nil
	}

	post, err := s.repo.Update(ctx, postID, patch)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return models.PostFailure(msgPostNotFound), nil
	}

	s.invalidate(ctx, postID)
	return models.PostSuccess(post), nil
}

// Delete removes a post owned by the caller and returns the pre-delete snapshot
func (s *postService) Delete(ctx context.Context, userID *string, postID string) (*models.PostPayload, error) {
	if userID == nil {
		return models.PostFailure(msgForbiddenAccess), nil
	}

	userErr, err := s.CheckOwnership(ctx, *userID, postID)
	if err != nil {
		return nil, err
	}
	if userErr != nil {
		return models.PostFailure(userErr.Message), nil
	}

	existing, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return models.PostFailure(msgPostNotFound), nil
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return nil, err
	}

	s.invalidate(ctx, postID)
	return models.PostSuccess(existing), nil
}

// Publish writes only the published flag of a post owned by the caller.
// Publishing an already-published post (or unpublishing a draft) is a no-op
// that still succeeds.
func (s *postService) Publish(ctx context.Context, userID *string, postID string, publish bool) (*models.PostPayload, error) {
	if userID == nil {
		return models.PostFailure(msgForbiddenAccess), nil
	}

	userErr, err := s.CheckOwnership(ctx, *userID, postID)
	if err != nil {
		return nil, err
	}
	if userErr != nil {
		return models.PostFailure(userErr.Message), nil
	}

	existing, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return models.PostFailure(msgPostNotFound), nil
	}

	post, err := s.repo.SetPublished(ctx, postID, publish)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return models.PostFailure(msgPostNotFound), nil
	}

	s.invalidate(ctx, postID)
	return models.PostSuccess(post), nil
}

// GetByID returns a single post. Drafts are visible only to their author;
// anyone can read a published post. Returns (nil, nil) when not visible.
func (s *postService) GetByID(ctx context.Context, userID *string, postID string) (*entities.Post, error) {
	post, err := s.fetchPost(ctx, postID)
	if err != nil || post == nil {
		return post, err
	}
	if !post.Published && (userID == nil || *userID != post.AuthorID) {
		return nil, nil
	}
	return post, nil
}

// GetPublished returns all published posts, newest first
func (s *postService) GetPublished(ctx context.Context) ([]*entities.Post, error) {
	return s.repo.GetPublished(ctx)
}

// GetByAuthorID returns an author's posts, newest first
func (s *postService) GetByAuthorID(ctx context.Context, authorID string, publishedOnly bool) ([]*entities.Post, error) {
	return s.repo.GetByAuthorID(ctx, authorID, publishedOnly)
}
