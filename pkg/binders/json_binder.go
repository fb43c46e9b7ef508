package binders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog"
)

// JSONParameterBinder turns a raw argument map into a typed input struct by
// round-tripping through encoding/json. Defaults for absent optional
// properties are injected first, required properties are checked, and numeric
// coercion happens in the target struct's field types during unmarshal.
type JSONParameterBinder struct {
	logger zerolog.Logger
}

type JSONParameterBinderOptions struct {
	Logger zerolog.Logger
}

func DefaultJSONParameterBinderOptions() JSONParameterBinderOptions {
	return JSONParameterBinderOptions{
		Logger: zerolog.Nop(),
	}
}

func NewJSONParameterBinder(opts JSONParameterBinderOptions) *JSONParameterBinder {
	return &JSONParameterBinder{
		logger: opts.Logger,
	}
}

func (b *JSONParameterBinder) BindToStruct(ctx context.Context, args map[string]any, target any, props []domain.ToolProperty) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	if args == nil {
		args = map[string]any{}
	}

	bound := make(map[string]any, len(args))
	for key, value := range args {
		bound[key] = value
	}

	for _, prop := range props {
		_, present := bound[prop.Key]

		if !present && prop.Default != nil {
			bound[prop.Key] = prop.Default
			present = true
		}

		if !present && prop.Required {
			return domain.NewValidationError("missing required field: %s", prop.Key)
		}
	}

	jsonData, err := json.Marshal(bound)
	if err != nil {
		return domain.NewValidationError("failed to encode arguments: %v", err)
	}

	if err := json.Unmarshal(jsonData, target); err != nil {
		var toolErr *domain.ToolError
		if errors.As(err, &toolErr) {
			if key, keyErr := offendingKey(bound, target, props); key != "" {
				return domain.NewValidationError("%s: %s", key, keyErr.Message)
			}

			return toolErr
		}

		return domain.NewValidationError("failed to bind arguments: %v", err)
	}

	b.logger.Debug().Msgf("Bound arguments to %T", target)

	return nil
}

func validateTarget(target any) error {
	if target == nil {
		return fmt.Errorf("bind target cannot be nil")
	}

	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return fmt.Errorf("bind target must be a non-nil pointer, got %T", target)
	}

	return nil
}

// offendingKey finds which property failed to decode by re-running the
// unmarshal one key at a time against a fresh target. encoding/json returns
// custom unmarshaler errors without field context, so the binder has to
// attribute them itself.
func offendingKey(bound map[string]any, target any, props []domain.ToolProperty) (string, *domain.ToolError) {
	targetType := reflect.ValueOf(target).Elem().Type()

	for _, prop := range props {
		value, ok := bound[prop.Key]
		if !ok {
			continue
		}

		data, err := json.Marshal(map[string]any{prop.Key: value})
		if err != nil {
			continue
		}

		var toolErr *domain.ToolError
		if err := json.Unmarshal(data, reflect.New(targetType).Interface()); errors.As(err, &toolErr) {
			return prop.Key, toolErr
		}
	}

	return "", nil
}
