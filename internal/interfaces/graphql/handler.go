package graphql

import (
	"net/http"
	"strings"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// NewHandler returns the HTTP handler serving GraphQL requests
func NewHandler(schema *graphqlgo.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

// playgroundPage is a minimal GraphiQL page pointed at the given endpoint.
const playgroundPage = `<!DOCTYPE html>
<html>
<head>
	<title>GraphiQL</title>
	<style>html, body, #graphiql { height: 100%; margin: 0; }</style>
	<link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body>
	<div id="graphiql">Loading...</div>
	<script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
	<script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
	<script src="https://unpkg.com/graphiql/graphiql.min.js"></script>
	<script>
		ReactDOM.createRoot(document.getElementById('graphiql')).render(
			React.createElement(GraphiQL, {
				fetcher: GraphiQL.createFetcher({ url: '{{endpoint}}' }),
			}),
		);
	</script>
</body>
</html>`

// NewPlaygroundHandler serves an interactive GraphiQL page for the
// given GraphQL endpoint. Only wired outside production.
func NewPlaygroundHandler(endpoint string) http.Handler {
	page := []byte(strings.ReplaceAll(playgroundPage, "{{endpoint}}", endpoint))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
}
