package graph

import (
	"context"

	"github.com/graphql-go/graphql"

	"blogql-be/internal/entities"
	"blogql-be/internal/identity"
	"blogql-be/internal/models"
	"blogql-be/internal/repository"
	"blogql-be/internal/service"
)

// Resolver is the root resolver for the GraphQL schema. It holds the services
// the field resolvers dispatch to; per-request identity rides the context.
type Resolver struct {
	Auth  service.AuthService
	Posts service.PostService
	Users repository.UserRepository
}

// callerID returns the authenticated user's ID from the request context, or
// nil for anonymous requests.
func callerID(ctx context.Context) *string {
	if id, ok := identity.FromContext(ctx); ok {
		return &id.UserID
	}
	return nil
}

func argString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// postInputFromArg converts the raw "post" argument into a PostInput, keeping
// absent fields nil so sparse updates stay sparse.
func postInputFromArg(arg interface{}) *models.PostInput {
	input := &models.PostInput{}
	m, ok := arg.(map[string]interface{})
	if !ok {
		return input
	}
	if v, ok := m["title"].(string); ok {
		input.Title = &v
	}
	if v, ok := m["content"].(string); ok {
		input.Content = &v
	}
	return input
}

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	creds, _ := p.Args["credentials"].(map[string]interface{})
	return r.Auth.Signup(
		p.Context,
		argString(creds, "email"),
		argString(creds, "password"),
		argString(p.Args, "name"),
		argString(p.Args, "bio"),
	)
}

func (r *Resolver) resolveSignin(p graphql.ResolveParams) (interface{}, error) {
	creds, _ := p.Args["credentials"].(map[string]interface{})
	return r.Auth.Signin(
		p.Context,
		argString(creds, "email"),
		argString(creds, "password"),
	)
}

func (r *Resolver) resolvePostCreate(p graphql.ResolveParams) (interface{}, error) {
	return r.Posts.Create(p.Context, callerID(p.Context), postInputFromArg(p.Args["post"]))
}

func (r *Resolver) resolvePostUpdate(p graphql.ResolveParams) (interface{}, error) {
	return r.Posts.Update(
		p.Context,
		callerID(p.Context),
		argString(p.Args, "postId"),
		postInputFromArg(p.Args["post"]),
	)
}

func (r *Resolver) resolvePostDelete(p graphql.ResolveParams) (interface{}, error) {
	return r.Posts.Delete(p.Context, callerID(p.Context), argString(p.Args, "postId"))
}

func (r *Resolver) resolvePostPublish(p graphql.ResolveParams) (interface{}, error) {
	publish, _ := p.Args["publish"].(bool)
	return r.Posts.Publish(p.Context, callerID(p.Context), argString(p.Args, "postId"), publish)
}

// resolveMe returns the caller's user record, or null for anonymous requests
func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	id := callerID(p.Context)
	if id == nil {
		return nil, nil
	}
	return r.Users.FindByID(p.Context, *id)
}

func (r *Resolver) resolveProfile(p graphql.ResolveParams) (interface{}, error) {
	return r.Users.FindProfileByUserID(p.Context, argString(p.Args, "userId"))
}

func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	posts, err := r.Posts.GetPublished(p.Context)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		// A nil slice would serialize as null and break the non-null list type
		posts = []*entities.Post{}
	}
	return posts, nil
}

func (r *Resolver) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	return r.Posts.GetByID(p.Context, callerID(p.Context), argString(p.Args, "id"))
}

// resolvePostUser resolves Post.user
func (r *Resolver) resolvePostUser(p graphql.ResolveParams) (interface{}, error) {
	post, ok := p.Source.(*entities.Post)
	if !ok {
		return nil, nil
	}
	return r.Users.FindByID(p.Context, post.AuthorID)
}

// resolveUserPosts resolves User.posts: the user themselves sees every post,
// everyone else sees published ones only
func (r *Resolver) resolveUserPosts(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entities.User)
	if !ok {
		return nil, nil
	}
	caller := callerID(p.Context)
	publishedOnly := caller == nil || *caller != user.ID
	posts, err := r.Posts.GetByAuthorID(p.Context, user.ID, publishedOnly)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*entities.Post{}
	}
	return posts, nil
}

// resolveUserProfile resolves User.profile
func (r *Resolver) resolveUserProfile(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entities.User)
	if !ok {
		return nil, nil
	}
	return r.Users.FindProfileByUserID(p.Context, user.ID)
}

// resolveProfileUser resolves Profile.user
func (r *Resolver) resolveProfileUser(p graphql.ResolveParams) (interface{}, error) {
	profile, ok := p.Source.(*entities.Profile)
	if !ok {
		return nil, nil
	}
	return r.Users.FindByID(p.Context, profile.UserID)
}
