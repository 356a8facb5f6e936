// Copyright 2026 Trevor Strong
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

// SourcePos identifies a location in a template.
//
// Errors produced while tokenizing only know their Offset; a [FileInfo] fills
// in the rest.
type SourcePos struct {
	Filename string
	// Byte offset from the start of the template.
	Offset int
	// One-based line and column. Zero if unknown. Columns count codepoints.
	Line, Col int
}

// String implements [fmt.Stringer].
func (p SourcePos) String() string {
	switch {
	case p.Line == 0 && p.Filename == "":
		return fmt.Sprintf("offset %d", p.Offset)
	case p.Line == 0:
		return fmt.Sprintf("%s:offset %d", p.Filename, p.Offset)
	case p.Filename == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	default:
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
	}
}

// FileInfo maps byte offsets in one template to lines and columns.
type FileInfo struct {
	name  string
	text  string
	lines []int
}

// NewFileInfo indexes the line starts of text.
func NewFileInfo(filename, text string) *FileInfo {
	lines := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &FileInfo{name: filename, text: text, lines: lines}
}

// Name returns the file name this info was built for.
func (f *FileInfo) Name() string {
	return f.name
}

// SourcePos computes the full position of offset, which is clamped to the
// bounds of the text.
func (f *FileInfo) SourcePos(offset int) SourcePos {
	offset = max(0, min(offset, len(f.text)))
	line := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	}) - 1

	// Malformed UTF-8 counts as one column per byte.
	col := 1
	for i := f.lines[line]; i < offset; col++ {
		_, n, err := utf8codec.DecodeWith(f.text[i:], utf8codec.WTF8)
		if err != nil {
			n = 1
		}
		i += n
	}

	return SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     line + 1,
		Col:      col,
	}
}

// Locate attaches a full position to err, if it carries an offset.
//
// Errors without a position are returned unchanged.
func (f *FileInfo) Locate(err error) error {
	var ewp ErrorWithPos
	if !errors.As(err, &ewp) {
		return err
	}
	return Error(f.SourcePos(ewp.GetPosition().Offset), ewp.Unwrap())
}
