// This file is part of svm - https://github.com/stackvm/svm
//
// Copyright 2026 The svm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ewriter provides the error tracking writer shared by the svm
// renderers.
package ewriter

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and remembers the first write error. Once an error
// has occurred, every subsequent write is a no-op returning that same error, so
// callers can emit a whole listing and check Err once at the end.
type Writer struct {
	w   io.Writer
	Err error
}

// New returns a Writer for w. If w already is a *Writer, it is returned as is.
func New(w io.Writer) *Writer {
	if ew, ok := w.(*Writer); ok {
		return ew
	}
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s.
func (w *Writer) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

// Printf formats according to format and writes the result.
func (w *Writer) Printf(format string, args ...interface{}) {
	if w.Err != nil {
		return
	}
	fmt.Fprintf(w, format, args...)
}
