package dataset

import "errors"

var (
	// ErrLengthMismatch indicates the record and vector sequences differ in
	// length. The builder refuses to silently truncate or pad.
	ErrLengthMismatch = errors.New("record and vector sequence lengths differ")

	// ErrBadMagic indicates the file is not a dataset container.
	ErrBadMagic = errors.New("not a dataset container")

	// ErrUnsupportedVersion indicates an unknown container format version.
	ErrUnsupportedVersion = errors.New("unsupported container version")

	// ErrChecksumMismatch indicates the payload digest does not match;
	// the file is truncated or corrupt.
	ErrChecksumMismatch = errors.New("container checksum mismatch")

	// ErrTruncatedContainer indicates the file is shorter than its header.
	ErrTruncatedContainer = errors.New("truncated container")
)
