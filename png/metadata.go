// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package png

import "time"

// EntryType selects which of PNG's three text chunk kinds a TextEntry is
// written as.
type EntryType int

const (
	// EtText writes an uncompressed tEXt chunk.
	EtText EntryType = iota
	// EtZtext writes a compressed zTXt chunk.
	EtZtext
	// EtItext writes an international iTXt chunk with deflate-compressed text.
	EtItext
)

// TextEntry is one keyword/value pair destined for a tEXt, zTXt or iTXt
// chunk.
type TextEntry struct {
	Key           string
	Value         string
	EntryType     EntryType
	LanguageTag   string
	TranslatedKey string
}

// Metadata carries the ancillary chunks an Encode call should attach
// alongside the pixel data. All fields are optional; a nil field means the
// corresponding chunk is omitted.
type Metadata struct {
	// Gamma is the gAMA chunk payload: image gamma times 100000.
	Gamma *uint32
	// SRGBIntent is the sRGB chunk's rendering intent, 0-3.
	SRGBIntent *uint8
	// LastModified becomes a tIME chunk, truncated to whole seconds UTC.
	LastModified *time.Time
	// Text holds zero or more tEXt/zTXt/iTXt entries, written in order.
	Text []*TextEntry
}

// validate checks constraints the PNG spec places on metadata fields that
// aren't otherwise enforced by their Go type.
func (m *Metadata) validate() error {
	if m == nil {
		return nil
	}
	if m.SRGBIntent != nil && *m.SRGBIntent > 3 {
		return FormatError("sRGB rendering intent must be 0-3")
	}
	for _, t := range m.Text {
		if t.Key == "" {
			return FormatError("text entry keyword must not be empty")
		}
	}
	return nil
}
