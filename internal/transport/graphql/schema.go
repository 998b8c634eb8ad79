// Package graphql serves the calendar over GraphQL next to the REST API.
// The schema in schema.graphqls is executed by a hand-written
// graphql.ExecutableSchema and served by the gqlgen handler.
package graphql

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/postcal-backend/internal/transport/graphql/resolver"
)

//go:embed schema.graphqls
var schemaSDL string

// Schema is the parsed and validated calendar schema.
var Schema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSDL})

// NewHandler serves GraphQL over POST. Mount it behind authentication and
// dataloader.Middleware.
func NewHandler(res *resolver.Resolver, log *slog.Logger) http.Handler {
	srv := handler.New(NewExecutableSchema(res))
	srv.AddTransport(transport.POST{})
	srv.SetErrorPresenter(NewErrorPresenter(log))
	return srv
}
