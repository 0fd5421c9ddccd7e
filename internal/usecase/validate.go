package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var requestValidator = validator.New()

func validateInput(ctx context.Context, payload any) error {
	if err := requestValidator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	return nil
}
