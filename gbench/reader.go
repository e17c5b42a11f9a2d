// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gbench reads the JSON results written by Google Benchmark
// (--benchmark_format=json or --benchmark_out).
//
// A results document is an object with an optional "context" object
// describing the machine and a "benchmarks" array with one object per
// measured run:
//
//	{
//	  "context": {"date": "...", "num_cpus": 8, ...},
//	  "benchmarks": [
//	    {"name": "BM_Sort/1024", "real_time": 1520.3, "time_unit": "ns", ...},
//	    ...
//	  ]
//	}
//
// Fields this package does not know about are ignored.
package gbench

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// A Result is a single benchmark run from a results document.
type Result struct {
	// Name is the full benchmark name, such as "BM_Sort/1024".
	Name string

	// RunName is the name without aggregate suffixes. Older
	// versions of Google Benchmark do not emit it.
	RunName string

	// RunType is "iteration" for a measured run and "aggregate"
	// for a statistic computed over repetitions (mean, median,
	// stddev, cv). It may be empty.
	RunType string

	// AggregateName is the statistic of an aggregate run.
	AggregateName string

	Repetitions     int
	RepetitionIndex int
	Iterations      int64

	// RealTime and CPUTime are per-iteration times in TimeUnit.
	RealTime float64
	CPUTime  float64

	// TimeUnit is one of "ns", "us", "ms" or "s". An empty
	// TimeUnit means nanoseconds.
	TimeUnit string

	Label string

	ErrorOccurred bool
	ErrorMessage  string

	// File and Line give the position of this result in its input.
	// They are purely diagnostic.
	File string
	Line int
}

// IsAggregate reports whether r is a statistic over repetitions
// rather than a measured run.
func (r *Result) IsAggregate() bool {
	return r.RunType == "aggregate"
}

// RealTimeNs returns r.RealTime converted to nanoseconds.
func (r *Result) RealTimeNs() (float64, error) {
	f, err := ParseTimeUnit(r.TimeUnit)
	if err != nil {
		file, line := r.Pos()
		return 0, fmt.Errorf("%s:%d: %s: %w", file, line, r.Name, err)
	}
	return r.RealTime * f, nil
}

// Pos returns the position of r in its input.
func (r *Result) Pos() (fileName string, line int) {
	return r.File, r.Line
}

// Context describes the machine and build a results document was
// produced on.
type Context struct {
	Date             string  `json:"date"`
	HostName         string  `json:"host_name"`
	Executable       string  `json:"executable"`
	NumCPUs          int     `json:"num_cpus"`
	MHzPerCPU        float64 `json:"mhz_per_cpu"`
	LibraryBuildType string  `json:"library_build_type"`
}

// A SyntaxError represents malformed input at a particular position
// of a results document.
type SyntaxError struct {
	FileName  string
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.FileName, e.Line, e.Col, e.Msg)
}

// wireResult is the JSON shape of a benchmark entry. The required
// fields are pointers so we can tell absent from zero.
type wireResult struct {
	Name            *string  `json:"name"`
	RunName         string   `json:"run_name"`
	RunType         string   `json:"run_type"`
	AggregateName   string   `json:"aggregate_name"`
	Repetitions     int      `json:"repetitions"`
	RepetitionIndex int      `json:"repetition_index"`
	Iterations      int64    `json:"iterations"`
	RealTime        *float64 `json:"real_time"`
	CPUTime         float64  `json:"cpu_time"`
	TimeUnit        string   `json:"time_unit"`
	Label           string   `json:"label"`
	ErrorOccurred   bool     `json:"error_occurred"`
	ErrorMessage    string   `json:"error_message"`
}

// A Reader reads benchmark results from a Google Benchmark JSON
// document.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	data     []byte
	dec      *json.Decoder
	fileName string
	err      error

	started, inArray, done bool
	sawBenchmarks         bool
	n                     int // index of the next benchmark entry

	result  *Result
	context *Context
}

// NewReader constructs a reader to parse a results document from r.
// fileName is used in error messages and in Result.File.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
//
// The whole input is consumed before Reset returns, so the caller
// may close ior as soon as Reset is done with it.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	*r = Reader{fileName: fileName}
	data, err := io.ReadAll(ior)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", fileName, err)
		return
	}
	r.data = data
	r.dec = json.NewDecoder(bytes.NewReader(data))
}

// Scan advances the reader to the next benchmark result and reports
// whether a result was read. The caller should use the Result method
// to get the result. If Scan reaches the end of the document or the
// document is malformed, it returns false, in which case the caller
// should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil || r.done {
		return false
	}
	for {
		if r.inArray {
			if r.dec.More() {
				return r.scanResult()
			}
			if !r.expectDelim(']') {
				return false
			}
			r.inArray = false
			continue
		}

		if !r.started {
			off := r.dec.InputOffset()
			tok, err := r.dec.Token()
			if err != nil {
				r.setErr(err)
				return false
			}
			if tok != json.Delim('{') {
				r.err = r.syntaxError(off, "top-level value is not an object")
				return false
			}
			r.started = true
			continue
		}

		if !r.dec.More() {
			r.finish()
			return false
		}
		tok, err := r.dec.Token()
		if err != nil {
			r.setErr(err)
			return false
		}
		off := r.dec.InputOffset()
		switch key, _ := tok.(string); key {
		case "benchmarks":
			tok, err := r.dec.Token()
			if err != nil {
				r.setErr(err)
				return false
			}
			if tok != json.Delim('[') {
				r.err = r.syntaxError(off, `"benchmarks" is not an array`)
				return false
			}
			r.inArray = true
			r.sawBenchmarks = true
		case "context":
			var c Context
			if err := r.dec.Decode(&c); err != nil {
				r.setErr(err)
				return false
			}
			r.context = &c
		default:
			var skip json.RawMessage
			if err := r.dec.Decode(&skip); err != nil {
				r.setErr(err)
				return false
			}
		}
	}
}

func (r *Reader) scanResult() bool {
	off := r.skipSpace(r.dec.InputOffset())
	var w wireResult
	if err := r.dec.Decode(&w); err != nil {
		r.setErr(err)
		return false
	}
	line, _ := r.lineCol(off)
	n := r.n
	r.n++
	if w.Name == nil {
		r.err = r.syntaxError(off, fmt.Sprintf("benchmark %d: missing \"name\"", n))
		return false
	}
	if w.RealTime == nil {
		r.err = r.syntaxError(off, fmt.Sprintf("benchmark %d (%s): missing \"real_time\"", n, *w.Name))
		return false
	}
	if _, err := ParseTimeUnit(w.TimeUnit); err != nil {
		r.err = r.syntaxError(off, fmt.Sprintf("benchmark %d (%s): %s", n, *w.Name, err))
		return false
	}
	r.result = &Result{
		Name:            *w.Name,
		RunName:         w.RunName,
		RunType:         w.RunType,
		AggregateName:   w.AggregateName,
		Repetitions:     w.Repetitions,
		RepetitionIndex: w.RepetitionIndex,
		Iterations:      w.Iterations,
		RealTime:        *w.RealTime,
		CPUTime:         w.CPUTime,
		TimeUnit:        w.TimeUnit,
		Label:           w.Label,
		ErrorOccurred:   w.ErrorOccurred,
		ErrorMessage:    w.ErrorMessage,
		File:            r.fileName,
		Line:            line,
	}
	return true
}

// finish consumes the closing brace of the document and checks that
// nothing follows it.
func (r *Reader) finish() {
	if !r.expectDelim('}') {
		return
	}
	r.done = true
	off := r.dec.InputOffset()
	if _, err := r.dec.Token(); err != io.EOF {
		r.err = r.syntaxError(off, "unexpected data after top-level object")
		return
	}
	if !r.sawBenchmarks {
		r.err = r.syntaxError(off, `missing "benchmarks" array`)
	}
}

func (r *Reader) expectDelim(d json.Delim) bool {
	off := r.dec.InputOffset()
	tok, err := r.dec.Token()
	if err != nil {
		r.setErr(err)
		return false
	}
	if tok != d {
		r.err = r.syntaxError(off, fmt.Sprintf("expected %q", d))
		return false
	}
	return true
}

// setErr converts a decoding error into a *SyntaxError at the
// position the decoder reported.
func (r *Reader) setErr(err error) {
	var (
		se *json.SyntaxError
		te *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &se):
		r.err = r.syntaxError(se.Offset, se.Error())
	case errors.As(err, &te):
		r.err = r.syntaxError(te.Offset, fmt.Sprintf("cannot use JSON %s as %s for field %q", te.Value, te.Type, te.Field))
	case err == io.EOF, errors.Is(err, io.ErrUnexpectedEOF):
		r.err = r.syntaxError(int64(len(r.data)), "unexpected end of input")
	default:
		r.err = r.syntaxError(r.dec.InputOffset(), err.Error())
	}
}

func (r *Reader) syntaxError(off int64, msg string) *SyntaxError {
	line, col := r.lineCol(off)
	return &SyntaxError{r.fileName, line, col, msg}
}

// lineCol returns the 1-based line and column of byte offset off.
func (r *Reader) lineCol(off int64) (line, col int) {
	if off > int64(len(r.data)) {
		off = int64(len(r.data))
	}
	prefix := r.data[:off]
	line = 1 + bytes.Count(prefix, []byte("\n"))
	col = int(off) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}

// skipSpace returns the offset of the first byte at or after off that
// is not whitespace or a value separator.
func (r *Reader) skipSpace(off int64) int64 {
	for off < int64(len(r.data)) {
		switch r.data[off] {
		case ' ', '\t', '\r', '\n', ',':
			off++
			continue
		}
		break
	}
	return off
}

// Result returns the result read by the last call to Scan.
func (r *Reader) Result() *Result {
	return r.result
}

// Context returns the document's context object, or nil if none has
// been read yet. Google Benchmark writes the context before the
// benchmarks, so it is normally available after the first Scan.
func (r *Reader) Context() *Context {
	return r.context
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// A File is a fully read results document.
type File struct {
	Context    *Context
	Benchmarks []*Result
}

// Load reads and parses the results document at path.
//
// If path does not exist, the error satisfies
// errors.Is(err, fs.ErrNotExist). If the document is malformed, the
// error is a *SyntaxError.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(f, path)
	f.Close()

	out := new(File)
	for r.Scan() {
		out.Benchmarks = append(out.Benchmarks, r.Result())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	out.Context = r.Context()
	return out, nil
}
