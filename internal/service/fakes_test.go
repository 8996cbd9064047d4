package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"blogql-be/internal/cache"
	"blogql-be/internal/entities"
	"blogql-be/internal/models"
)

// fakeUserRepo is an in-memory UserRepository for tests
type fakeUserRepo struct {
	users    map[string]*entities.User    // by ID
	profiles map[string]*entities.Profile // by user ID
	failWith error                        // when set, every call faults
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[string]*entities.User),
		profiles: make(map[string]*entities.Profile),
	}
}

func (f *fakeUserRepo) CreateWithProfile(ctx context.Context, email, passwordHash, name, bio string) (*entities.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	now := time.Now()
	user := &entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.users[user.ID] = user
	f.profiles[user.ID] = &entities.Profile{
		ID:        uuid.NewString(),
		Bio:       bio,
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindProfileByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.profiles[userID], nil
}

// fakePostRepo is an in-memory PostRepository for tests
type fakePostRepo struct {
	posts    map[string]*entities.Post
	failWith error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*entities.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, title, content, authorID string) (*entities.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	now := time.Now()
	post := &entities.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Published: false,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.posts[post.ID] = post
	return post, nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id string, patch *models.PostPatch) (*entities.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	post.UpdatedAt = time.Now()
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) SetPublished(ctx context.Context, id string, published bool) (*entities.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	post.Published = published
	post.UpdatedAt = time.Now()
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) GetByAuthorID(ctx context.Context, authorID string, publishedOnly bool) ([]*entities.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var posts []*entities.Post
	for _, p := range f.posts {
		if p.AuthorID != authorID {
			continue
		}
		if publishedOnly && !p.Published {
			continue
		}
		copied := *p
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (f *fakePostRepo) GetPublished(ctx context.Context) ([]*entities.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var posts []*entities.Post
	for _, p := range f.posts {
		if p.Published {
			copied := *p
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

// memCache is an in-memory cache.Cache so tests exercise the cache-through
// read path and invalidation without Redis
type memCache struct {
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Get(ctx context.Context, key string) (string, error) {
	val, ok := m.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return val, nil
}

func (m *memCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.Set(ctx, key, string(data), expiration)
}

func (m *memCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := m.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}
