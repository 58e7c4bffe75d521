package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

type SearchPostsRequest struct {
	Query       string `validate:"required,max=256"`
	SubredditID string
}

type ListSubredditsRequest struct {
	Category string `validate:"omitempty,maintopic"`
}

// NewValidator returns a validator that knows the maintopic tag. topics is
// copied.
func NewValidator(topics []string) *validator.Validate {
	allowed := slices.Clone(topics)
	v := validator.New()
	_ = v.RegisterValidation("maintopic", func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	})
	return v
}

func validateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id is required: %w", kind, ErrInvalidRequest)
	}
	return nil
}
