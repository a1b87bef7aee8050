package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveRedirect(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		u, mockService := newTestUsecase(t)
		mockService.EXPECT().
			Lookup(mock.Anything, model.Code("aB3xZ9")).
			Return(model.LinkRecord{Code: "aB3xZ9", URL: "https://example.com/path?q=1"}, nil).
			Once()

		target, err := u.ResolveRedirect(context.Background(), "aB3xZ9")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/path?q=1", target)
	})

	t.Run("not found", func(t *testing.T) {
		u, mockService := newTestUsecase(t)
		mockService.EXPECT().
			Lookup(mock.Anything, model.Code("gone42")).
			Return(model.LinkRecord{}, fmt.Errorf("%w: gone42", service.ErrNotFound)).
			Once()

		_, err := u.ResolveRedirect(context.Background(), "gone42")

		assert.ErrorIs(t, err, ErrURLNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		u, mockService := newTestUsecase(t)
		mockService.EXPECT().
			Lookup(mock.Anything, model.Code("aB3xZ9")).
			Return(model.LinkRecord{}, errors.New("connection refused")).
			Once()

		_, err := u.ResolveRedirect(context.Background(), "aB3xZ9")

		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.NotErrorIs(t, err, ErrURLNotFound)
	})
}
