package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes. The codes match the REST error strings in
// upper case.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// Parse and schema validation errors have no cause and are shown as is.
		var raw *gqlerror.Error
		if errors.As(err, &raw) && raw.Err == nil {
			return gqlErr
		}

		var (
			stageErr   *domain.StageIncompleteError
			validErr   *domain.ValidationError
			publishErr *domain.PublishError
		)

		switch {
		case errors.As(err, &stageErr):
			gqlErr.Extensions = map[string]any{"code": "STAGE_INCOMPLETE", "field": stageErr.Field}

		case errors.Is(err, domain.ErrStageIncomplete):
			gqlErr.Extensions = map[string]any{"code": "STAGE_INCOMPLETE"}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]any{"code": "VALIDATION"}
			if errors.As(err, &validErr) {
				fields := make([]map[string]string, 0, len(validErr.Errors))
				for _, fe := range validErr.Errors {
					fields = append(fields, map[string]string{"field": fe.Field, "message": fe.Message})
				}
				gqlErr.Extensions["fields"] = fields
			}

		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Extensions = map[string]any{"code": "NOT_FOUND"}

		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Extensions = map[string]any{"code": "UNAUTHENTICATED"}

		case errors.Is(err, domain.ErrForbidden):
			gqlErr.Extensions = map[string]any{"code": "FORBIDDEN"}

		case errors.Is(err, domain.ErrNotConnected):
			gqlErr.Extensions = map[string]any{"code": "NOT_CONNECTED"}

		case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
			gqlErr.Extensions = map[string]any{"code": "CONFLICT"}

		case errors.As(err, &publishErr):
			gqlErr.Extensions = map[string]any{"code": "PUBLISH_FAILED", "reason": publishErr.Reason}

		case errors.Is(err, domain.ErrExternal):
			gqlErr.Extensions = map[string]any{"code": "PUBLISH_FAILED"}

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]any{"code": "INTERNAL"}
		}

		return gqlErr
	}
}
