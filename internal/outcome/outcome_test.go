package outcome

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, statErr)

	var syntaxErr *json.SyntaxError
	decodeErr := json.Unmarshal([]byte("{"), &map[string]any{})
	require.ErrorAs(t, decodeErr, &syntaxErr)

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, OK},
		{"os not exist", statErr, NotFound},
		{"wrapped not exist", fmt.Errorf("read: %w", fs.ErrNotExist), NotFound},
		{"errdefs not found", errdefs.ErrNotFound, NotFound},
		{"permission", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, PermissionDenied},
		{"errdefs permission", errdefs.ErrPermissionDenied, PermissionDenied},
		{"malformed", Malformed(decodeErr), MalformedContent},
		{"bare json error", decodeErr, Unclassified},
		{"invalid operand", ErrInvalidOperand, InvalidOperandType},
		{"out of range", fmt.Errorf("index 10: %w", ErrOutOfRange), OutOfRange},
		{"divide by zero", ErrDivideByZero, DivideByZero},
		{"other", errors.New("disk on fire"), Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestMalformed_NilStaysNil(t *testing.T) {
	assert.NoError(t, Malformed(nil))
}

func TestFailure_NeverReportsOK(t *testing.T) {
	r := Failure(nil, "something odd")
	assert.Equal(t, Unclassified, r.Kind)
	assert.True(t, r.Failed())
}

func TestUnexpected_IgnoresTheCause(t *testing.T) {
	err := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}

	r := Unexpected(err, "An error occurred: %v", err)

	assert.Equal(t, Unclassified, r.Kind)
	assert.Equal(t, "An error occurred: open x: permission denied", r.Message)
	assert.ErrorIs(t, r.Err, fs.ErrPermission)
}

func TestSuccess(t *testing.T) {
	r := Success("%d / %d = %s", 10, 2, "5.0")
	assert.False(t, r.Failed())
	assert.Equal(t, "10 / 2 = 5.0", r.String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "divide-by-zero", DivideByZero.String())
	assert.Equal(t, "unclassified", Kind(99).String())

	text, err := MalformedContent.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "malformed-content", string(text))
}
