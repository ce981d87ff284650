package obj

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies a failed parse.
type Kind int

const (
	KindFileOpen Kind = iota + 1
	KindRead
	KindInvalidVertex
	KindInvalidNormal
	KindInvalidTexCoord
	KindInvalidFace
	KindUnknownDirective
)

var kindNames = map[Kind]string{
	KindFileOpen:         "file open error",
	KindRead:             "read error",
	KindInvalidVertex:    "invalid vertex",
	KindInvalidNormal:    "invalid normal",
	KindInvalidTexCoord:  "invalid texture coordinate",
	KindInvalidFace:      "invalid face",
	KindUnknownDirective: "unknown directive",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinels matching the Kind of an *Error through errors.Is.
var (
	ErrFileOpen         = errors.New("cannot open file")
	ErrRead             = errors.New("cannot read input")
	ErrInvalidVertex    = errors.New("invalid vertex")
	ErrInvalidNormal    = errors.New("invalid normal")
	ErrInvalidTexCoord  = errors.New("invalid texture coordinate")
	ErrInvalidFace      = errors.New("invalid face")
	ErrUnknownDirective = errors.New("unknown directive")
)

// Causes reported beneath a Kind.
var (
	ErrMalformedNumber            = errors.New("malformed number")
	ErrZeroIndex                  = errors.New("index 0 is out of range, indices start at 1")
	ErrMissingPositionIndex       = errors.New("missing position index")
	ErrTooManyFields              = errors.New("too many fields in face vertex")
	ErrInconsistentFaceReferences = errors.New("face vertices disagree on texture or normal references")
	ErrExtraTokens                = errors.New("unexpected trailing tokens")
)

var kindErrors = map[Kind]error{
	KindFileOpen:         ErrFileOpen,
	KindRead:             ErrRead,
	KindInvalidVertex:    ErrInvalidVertex,
	KindInvalidNormal:    ErrInvalidNormal,
	KindInvalidTexCoord:  ErrInvalidTexCoord,
	KindInvalidFace:      ErrInvalidFace,
	KindUnknownDirective: ErrUnknownDirective,
}

// Error reports the first failure of a parse.
//
// Line is 1-based and Text holds the line as it was read, before comment
// removal. Both are zero for KindFileOpen.
type Error struct {
	Kind    Kind
	Name    string
	Line    int
	Text    string
	Keyword string // set for KindUnknownDirective
	cause   error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Kind == KindUnknownDirective {
		msg += " " + strconv.Quote(e.Keyword)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	switch {
	case e.Line > 0 && e.Name != "":
		return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	case e.Name != "":
		return e.Name + ": " + msg
	}
	return msg
}

// Unwrap exposes both the sentinel of e.Kind and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindErrors[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// Cause returns the error beneath the Kind, e.g. ErrTooManyFields.
func (e *Error) Cause() error { return e.cause }

type numberError struct {
	token string
	err   error
}

func (e *numberError) Error() string {
	return fmt.Sprintf("%s %q", e.err, e.token)
}

func (e *numberError) Unwrap() error { return e.err }
