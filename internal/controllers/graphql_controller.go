package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

// GraphQLRequest is the standard GraphQL-over-HTTP request body
type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type GraphQLController struct {
	schema graphql.Schema
}

func NewGraphQLController(schema graphql.Schema) *GraphQLController {
	return &GraphQLController{
		schema: schema,
	}
}

// Execute handles POST /graphql. User errors come back inside the payload
// envelopes; resolver faults surface as top-level GraphQL errors.
func (gc *GraphQLController) Execute(c *gin.Context) {
	var req GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"message": "Invalid request body"}},
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         gc.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})

	c.JSON(http.StatusOK, result)
}

// Playground handles GET /graphql with an interactive GraphiQL page
func (gc *GraphQLController) Playground(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(playgroundHTML))
}

const playgroundHTML = `<!DOCTYPE html>
<html>
  <head>
    <title>Blog GraphQL</title>
    <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
  </head>
  <body style="margin: 0;">
    <div id="graphiql" style="height: 100vh;"></div>
    <script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
    <script>
      ReactDOM.render(
        React.createElement(GraphiQL, {
          fetcher: GraphiQL.createFetcher({ url: '/graphql' }),
        }),
        document.getElementById('graphiql'),
      );
    </script>
  </body>
</html>`
