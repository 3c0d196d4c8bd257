package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

// HandlerFunc is a tool handler over a decoded, validated input.
type HandlerFunc[In any] func(ctx context.Context, in In) (any, error)

// Binder decodes and validates tool arguments.
type Binder struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewBinder returns a Binder with the domain validation tags registered:
// client_id and isin.
func NewBinder(logger *slog.Logger) *Binder {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails for empty or reserved tag names.
	_ = v.RegisterValidation("client_id", func(fl validator.FieldLevel) bool {
		return clients.ValidateID(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("isin", func(fl validator.FieldLevel) bool {
		return catalog.ValidateISIN(fl.Field().String()) == nil
	})

	return &Binder{validate: v, logger: logger}
}

// Bind decodes raw into in and validates it.
func (b *Binder) Bind(raw json.RawMessage, in any) error {
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, in); err != nil {
			return decodeError(raw, err)
		}
	}

	if err := b.validate.Struct(in); err != nil {
		return validationError(err)
	}

	return nil
}

// Handler adapts fn to an mcp.ToolHandler. The result of fn is marshalled
// as JSON text; errors become error results.
func Handler[In any](b *Binder, name string, fn HandlerFunc[In]) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw json.RawMessage
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}

		var in In
		if err := b.Bind(raw, &in); err != nil {
			b.logger.DebugContext(ctx, "rejected tool arguments",
				slog.String("tool", name),
				slog.String("error", err.Error()),
			)

			return ErrorResult(err), nil
		}

		out, err := fn(ctx, in)
		if err != nil {
			level := slog.LevelWarn
			if werrors.CodeOf(err) == werrors.CodeInternal {
				level = slog.LevelError
			}

			b.logger.Log(ctx, level, "tool call failed",
				slog.String("tool", name),
				slog.String("error", err.Error()),
			)

			return ErrorResult(err), nil
		}

		result, err := JSONResult(out)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		b.logger.DebugContext(ctx, "tool call served", slog.String("tool", name))

		return result, nil
	}
}

func decodeError(raw json.RawMessage, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return werrors.Invalid(typeErr.Field, typeErr.Value, "expected "+typeErr.Type.String())
	}

	return werrors.Invalid("arguments", string(raw), "expected a JSON object")
}

// validationError maps the first failed constraint to the error taxonomy.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate arguments: %w", err)
	}

	fe := fieldErrs[0]
	field := fe.Field()
	value := fmt.Sprint(fe.Value())

	switch fe.Tag() {
	case "required":
		return werrors.Missing(field)
	case "client_id":
		if err := clients.ValidateID(value); err != nil {
			return err
		}
	case "isin":
		if err := catalog.ValidateISIN(value); err != nil {
			return err
		}
	case "oneof":
		return werrors.Invalid(field, value, "must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		return werrors.Invalid(field, value, "must be at least "+fe.Param())
	case "max", "lte":
		return werrors.Invalid(field, value, "must be at most "+fe.Param())
	}

	return werrors.Invalid(field, value, "failed "+fe.Tag()+" constraint")
}
