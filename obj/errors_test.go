package obj

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid face", KindInvalidFace.String())
	assert.Equal(t, "file open error", KindFileOpen.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestErrorFormatting(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindInvalidVertex, Name: "a.obj", Line: 3, cause: ErrExtraTokens}, "a.obj:3: invalid vertex: unexpected trailing tokens"},
		{&Error{Kind: KindInvalidVertex, Line: 3, cause: ErrExtraTokens}, "line 3: invalid vertex: unexpected trailing tokens"},
		{&Error{Kind: KindFileOpen, Name: "a.obj", cause: errors.New("denied")}, "a.obj: file open error: denied"},
		{&Error{Kind: KindUnknownDirective, Keyword: "o"}, `unknown directive "o"`},
	}
	for _, tc := range cases {
		assert.EqualError(t, tc.err, tc.want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Kind: KindInvalidFace, cause: ErrTooManyFields}
	assert.ErrorIs(t, err, ErrInvalidFace)
	assert.ErrorIs(t, err, ErrTooManyFields)
	assert.NotErrorIs(t, err, ErrInvalidVertex)
	assert.Equal(t, ErrTooManyFields, err.Cause())

	bare := &Error{Kind: KindUnknownDirective, Keyword: "g"}
	assert.Equal(t, []error{ErrUnknownDirective}, bare.Unwrap())
	assert.Nil(t, bare.Cause())
}
