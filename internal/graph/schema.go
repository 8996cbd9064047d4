package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"blogql-be/internal/entities"
)

// NewSchema builds the executable GraphQL schema around the given resolver
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userErrorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "UserError",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"published": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if post, ok := p.Source.(*entities.Post); ok {
						return post.CreatedAt.Format(time.RFC3339), nil
					}
					return nil, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if post, ok := p.Source.(*entities.Post); ok {
						return post.UpdatedAt.Format(time.RFC3339), nil
					}
					return nil, nil
				},
			},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user, ok := p.Source.(*entities.User); ok {
						return user.CreatedAt.Format(time.RFC3339), nil
					}
					return nil, nil
				},
			},
		},
	})

	profileType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"id":  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"bio": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	// Circular references are attached after construction
	postType.AddFieldConfig("user", &graphql.Field{
		Type:    userType,
		Resolve: r.resolvePostUser,
	})
	userType.AddFieldConfig("posts", &graphql.Field{
		Type:    graphql.NewList(graphql.NewNonNull(postType)),
		Resolve: r.resolveUserPosts,
	})
	userType.AddFieldConfig("profile", &graphql.Field{
		Type:    profileType,
		Resolve: r.resolveUserProfile,
	})
	profileType.AddFieldConfig("user", &graphql.Field{
		Type:    userType,
		Resolve: r.resolveProfileUser,
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"userErrors": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userErrorType)))},
			"token":      &graphql.Field{Type: graphql.String},
		},
	})

	postPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PostPayload",
		Fields: graphql.Fields{
			"userErrors": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userErrorType)))},
			"post":       &graphql.Field{Type: postType},
		},
	})

	credentialsInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CredentialsInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	postInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.resolveMe,
			},
			"profile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveProfile,
			},
			"posts": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Resolve: r.resolvePosts,
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolvePost,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"credentials": &graphql.ArgumentConfig{Type: graphql.NewNonNull(credentialsInput)},
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"bio":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveSignup,
			},
			"signin": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"credentials": &graphql.ArgumentConfig{Type: graphql.NewNonNull(credentialsInput)},
				},
				Resolve: r.resolveSignin,
			},
			"postCreate": &graphql.Field{
				Type: graphql.NewNonNull(postPayloadType),
				Args: graphql.FieldConfigArgument{
					"post": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postInput)},
				},
				Resolve: r.resolvePostCreate,
			},
			"postUpdate": &graphql.Field{
				Type: graphql.NewNonNull(postPayloadType),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"post":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(postInput)},
				},
				Resolve: r.resolvePostUpdate,
			},
			"postDelete": &graphql.Field{
				Type: graphql.NewNonNull(postPayloadType),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolvePostDelete,
			},
			"postPublish": &graphql.Field{
				Type: graphql.NewNonNull(postPayloadType),
				Args: graphql.FieldConfigArgument{
					"postId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"publish": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
				},
				Resolve: r.resolvePostPublish,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
