package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"wrapped not in wish list", fmt.Errorf("item 4: %w", domain.ErrNotInWishList), http.StatusNotFound, ErrMsgNotInWishListError},
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest, ErrMsgInvalidQuantityError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"overflow", domain.ErrQuantityOverflow, http.StatusUnprocessableEntity, ErrMsgQuantityOverflowError},
		{"cyclic", fmt.Errorf("expand: %w", domain.ErrCyclicRecipe), http.StatusUnprocessableEntity, ErrMsgCyclicRecipeError},
		{"unavailable", domain.ErrDataSourceUnavailable, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrMsgTimeoutError},
		{"unknown error hides details", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
