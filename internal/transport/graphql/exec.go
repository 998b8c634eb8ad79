package graphql

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/transport/graphql/resolver"
)

var errIntrospectionDisabled = fmt.Errorf("%w: introspection is disabled", domain.ErrForbidden)

// object is a value of a GraphQL object type. resolve returns one of the
// shapes render understands.
type object interface {
	typeName() string
	resolve(ctx context.Context, field string, args map[string]any) (any, error)
}

type executableSchema struct {
	schema   *ast.Schema
	resolver *resolver.Resolver
}

// NewExecutableSchema binds the resolvers to Schema.
func NewExecutableSchema(res *resolver.Resolver) graphql.ExecutableSchema {
	return &executableSchema{schema: Schema, resolver: res}
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{vars: opCtx.Variables}

	var root object
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = queryObject{e.resolver}
	case ast.Mutation:
		root = mutationObject{e.resolver}
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		var buf bytes.Buffer
		ec.object(ctx, nil, opCtx.Operation.SelectionSet, root).MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// executionContext walks one operation. Fields are resolved in document
// order, which also runs mutations serially.
type executionContext struct {
	vars map[string]any
}

func (ec *executionContext) object(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj object) graphql.Marshaler {
	out := &fieldSet{}
	for _, f := range ec.collectFields(sel, obj.typeName()) {
		fieldPath := append(slices.Clone(path), ast.PathName(f.Alias))
		out.add(f.Alias, ec.field(ctx, fieldPath, f, obj))
	}
	return out
}

func (ec *executionContext) field(ctx context.Context, path ast.Path, f *ast.Field, obj object) graphql.Marshaler {
	if f.Name == "__typename" {
		return graphql.MarshalString(obj.typeName())
	}
	if strings.HasPrefix(f.Name, "__") {
		graphql.AddError(ctx, gqlerror.WrapPath(path, errIntrospectionDisabled))
		return graphql.Null
	}

	v, err := obj.resolve(ctx, f.Name, f.ArgumentMap(ec.vars))
	if err != nil {
		graphql.AddError(ctx, gqlerror.WrapPath(path, err))
		return graphql.Null
	}
	return ec.render(ctx, path, f.SelectionSet, v)
}

func (ec *executionContext) render(ctx context.Context, path ast.Path, sel ast.SelectionSet, v any) graphql.Marshaler {
	switch v := v.(type) {
	case nil:
		return graphql.Null
	case string:
		return graphql.MarshalString(v)
	case *string:
		if v == nil {
			return graphql.Null
		}
		return graphql.MarshalString(*v)
	case int:
		return graphql.MarshalInt(v)
	case bool:
		return graphql.MarshalBoolean(v)
	case []string:
		return list(v, func(_ int, s string) graphql.Marshaler { return graphql.MarshalString(s) })
	case [][]string:
		return list(v, func(i int, row []string) graphql.Marshaler {
			return ec.render(ctx, append(slices.Clone(path), ast.PathIndex(i)), nil, row)
		})
	case object:
		return ec.object(ctx, path, sel, v)
	case []object:
		return list(v, func(i int, o object) graphql.Marshaler {
			return ec.object(ctx, append(slices.Clone(path), ast.PathIndex(i)), sel, o)
		})
	default:
		panic(fmt.Sprintf("graphql: cannot render %T", v))
	}
}

// collectFields flattens fragments into the fields that apply to typeName.
// Fields sharing a response key are merged into one.
func (ec *executionContext) collectFields(sel ast.SelectionSet, typeName string) []*ast.Field {
	var (
		fields []*ast.Field
		index  = map[string]int{}
	)

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, s := range set {
			switch s := s.(type) {
			case *ast.Field:
				if !ec.included(s.Directives) {
					continue
				}
				i, seen := index[s.Alias]
				if !seen {
					index[s.Alias] = len(fields)
					fields = append(fields, s)
					continue
				}
				merged := *fields[i]
				merged.SelectionSet = append(slices.Clip(merged.SelectionSet), s.SelectionSet...)
				fields[i] = &merged
			case *ast.InlineFragment:
				if !ec.included(s.Directives) || (s.TypeCondition != "" && s.TypeCondition != typeName) {
					continue
				}
				walk(s.SelectionSet)
			case *ast.FragmentSpread:
				if !ec.included(s.Directives) || s.Definition == nil || s.Definition.TypeCondition != typeName {
					continue
				}
				walk(s.Definition.SelectionSet)
			}
		}
	}
	walk(sel)

	return fields
}

// included applies @skip and @include.
func (ec *executionContext) included(dirs ast.DirectiveList) bool {
	if d := dirs.ForName("skip"); d != nil {
		if skip, _ := d.ArgumentMap(ec.vars)["if"].(bool); skip {
			return false
		}
	}
	if d := dirs.ForName("include"); d != nil {
		if include, _ := d.ArgumentMap(ec.vars)["if"].(bool); !include {
			return false
		}
	}
	return true
}

func list[T any](items []T, render func(int, T) graphql.Marshaler) graphql.Array {
	out := make(graphql.Array, len(items))
	for i, item := range items {
		out[i] = render(i, item)
	}
	return out
}

// fieldSet is a JSON object that keeps the selection order.
type fieldSet struct {
	keys   []string
	values []graphql.Marshaler
}

func (s *fieldSet) add(key string, v graphql.Marshaler) {
	s.keys = append(s.keys, key)
	s.values = append(s.values, v)
}

func (s *fieldSet) MarshalGQL(w io.Writer) {
	io.WriteString(w, "{")
	for i, key := range s.keys {
		if i > 0 {
			io.WriteString(w, ",")
		}
		graphql.MarshalString(key).MarshalGQL(w)
		io.WriteString(w, ":")
		s.values[i].MarshalGQL(w)
	}
	io.WriteString(w, "}")
}
