package graph

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blogql-be/internal/entities"
	"blogql-be/internal/models"
)

// In-memory repositories backing the resolver tests

type fakeUserRepo struct {
	users    map[string]*entities.User
	profiles map[string]*entities.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[string]*entities.User),
		profiles: make(map[string]*entities.Profile),
	}
}

func (f *fakeUserRepo) CreateWithProfile(ctx context.Context, email, passwordHash, name, bio string) (*entities.User, error) {
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
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindProfileByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	return f.profiles[userID], nil
}

type fakePostRepo struct {
	posts map[string]*entities.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*entities.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, title, content, authorID string) (*entities.Post, error) {
	now := time.Now()
	post := &entities.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.posts[post.ID] = post
	return post, nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id string, patch *models.PostPatch) (*entities.Post, error) {
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
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) GetByAuthorID(ctx context.Context, authorID string, publishedOnly bool) ([]*entities.Post, error) {
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
	var posts []*entities.Post
	for _, p := range f.posts {
		if p.Published {
			copied := *p
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}
