package farbfeld

import "github.com/pkg/errors"

var (
	errTruncated = errors.New("farbfeld: header shorter than 16 bytes")
	errBadMagic  = errors.New("farbfeld: missing \"farbfeld\" magic")
)
