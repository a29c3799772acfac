package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/marquee/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "movie",
			ID:       "Titanic",
		}
		assert.Equal(t, `movie "Titanic" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("movie", "Heat")
		wrapped := fmt.Errorf("delete: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
		assert.False(t, pkgerrors.IsAlreadyExists(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := pkgerrors.NewAlreadyExistsError("movie", "Alien")
	assert.Equal(t, `movie "Alien" already exists`, err.Error())
	assert.True(t, pkgerrors.IsAlreadyExists(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("rating", 11.0, "must be between 0 and 10")
		assert.Equal(t, "validation failed for field rating: must be between 0 and 10", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty input"}
		assert.Equal(t, "validation failed: empty input", err.Error())
	})
}

func TestMalformedRecordError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.MalformedRecordError
		want string
	}{
		{
			name: "document level",
			err:  pkgerrors.NewMalformedRecordError("data.json", -1, "", "movies must be an array"),
			want: "malformed document data.json: movies must be an array",
		},
		{
			name: "record field",
			err:  pkgerrors.NewMalformedRecordError("data.json", 2, "year", "must be an integer"),
			want: "malformed record 2 in data.json: field year: must be an integer",
		},
		{
			name: "record without field",
			err:  pkgerrors.NewMalformedRecordError("data.json", 0, "", "must be an object"),
			want: "malformed record 0 in data.json: must be an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsMalformedRecord(tt.err))
		})
	}
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/data.json", base)

	assert.Equal(t, "IO error during write of /tmp/data.json: permission denied", err.Error())
	assert.ErrorIs(t, err, base)

	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(fmt.Errorf("save: %w", err), &ioErr))
	assert.Equal(t, "write", ioErr.Operation)
}

func TestResourceError(t *testing.T) {
	base := errors.New("disk full")
	err := pkgerrors.NewResourceError("save", "catalog", "", base)
	assert.Equal(t, "failed to save catalog: disk full", err.Error())
	assert.ErrorIs(t, err, base)

	err = pkgerrors.NewResourceError("update", "movie", "Heat", base)
	assert.Equal(t, "failed to update movie Heat: disk full", err.Error())
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("store", "data file path is empty", nil)
	assert.Equal(t, "configuration error in store: data file path is empty", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("load", "catalog", "", nil))
	assert.NoError(t, pkgerrors.WrapValidation("title", nil))

	err := pkgerrors.WrapValidation("year", errors.New("not a number"))
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "year")
}

func TestAliases(t *testing.T) {
	err := fmt.Errorf("load: %w", pkgerrors.NewNotFoundError("movie", "Heat"))

	var nf *pkgerrors.NotFoundError
	require.True(t, pkgerrors.As(err, &nf))
	assert.Equal(t, "Heat", nf.ID)
	assert.True(t, pkgerrors.Is(err, pkgerrors.ErrNotFound))
}
