package supportext

import (
	"errors"
	"fmt"

	"github.com/NatronGitHub/openfx-supportext-sub000/internal/image"
)

// Errors returned by render calls. Test with errors.Is.
var (
	// ErrUnsupportedFormat is returned for a pixel format or depth outside
	// {Alpha, RGB, RGBA} x {UByte, UShort, Half, Float}.
	ErrUnsupportedFormat = image.ErrUnsupportedFormat

	// ErrFormatMismatch is returned when a source does not share the
	// destination's format and depth. It wraps ErrUnsupportedFormat.
	ErrFormatMismatch = fmt.Errorf("supportext: source does not match destination: %w", ErrUnsupportedFormat)

	// ErrWindowOutOfBounds is returned when the render window is not
	// contained in the destination bounds.
	ErrWindowOutOfBounds = errors.New("supportext: render window outside destination bounds")

	// ErrNilDestination is returned when the destination buffer is nil.
	ErrNilDestination = errors.New("supportext: nil destination")

	// ErrInvalidBuffer wraps a buffer validation error
	// (image.ErrInvalidBounds, image.ErrInvalidStride, image.ErrDataTooSmall).
	ErrInvalidBuffer = errors.New("supportext: invalid buffer")

	// ErrInvalidOp is returned by Merge for an operator outside the table.
	ErrInvalidOp = errors.New("supportext: invalid merge operator")

	// ErrClosed is returned by render calls on a closed Engine.
	ErrClosed = errors.New("supportext: engine closed")
)
