// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbench

import "os"

// A Files reads benchmark results from a sequence of input files.
//
// Results are returned in the order of Paths and, within a file, in
// document order. Reading stops at the first missing or malformed
// file.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// next is the index in Paths of the next file to open.
	next    int
	reader  Reader
	reading bool
	context *Context
	err     error
}

// Scan advances to the next result across all files and reports
// whether a result was read. The caller should use the Result method
// to get the result. If Scan reaches the end of the last file or
// encounters an error, it returns false, in which case the caller
// should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	for {
		if f.reading {
			if f.reader.Scan() {
				return true
			}
			if err := f.reader.Err(); err != nil {
				f.err = err
				return false
			}
			if f.context == nil {
				f.context = f.reader.Context()
			}
			f.reading = false
		}

		if f.next >= len(f.Paths) {
			return false
		}
		path := f.Paths[f.next]
		f.next++
		file, err := os.Open(path)
		if err != nil {
			f.err = err
			return false
		}
		f.reader.Reset(file, path)
		file.Close()
		f.reading = true
	}
}

// Result returns the result read by the last call to Scan.
func (f *Files) Result() *Result {
	return f.reader.Result()
}

// Context returns the context of the first file that had one, once
// that file has been read to the end.
func (f *Files) Context() *Context {
	if f.context == nil && f.reading {
		return f.reader.Context()
	}
	return f.context
}

// Err returns the first error encountered by Scan.
func (f *Files) Err() error {
	return f.err
}
