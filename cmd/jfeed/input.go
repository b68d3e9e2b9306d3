// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jfeed"
	"github.com/tailscale/hujson"
)

// inputOptions are the settings shared by all subcommands for reading input.
type inputOptions struct {
	chunk    int
	trailing bool
	jwcc     bool
}

// parseFile parses the document in the named file, or standard input if path
// is "-", delivering events to h.
func parseFile(path string, h jfeed.Handler, opts *inputOptions) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if opts.jwcc {
		std, err := standardize(r)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		r = std
	}

	var buf []byte
	if opts.chunk > 0 {
		buf = make([]byte, opts.chunk)
	}
	p := jfeed.NewParser(h)
	p.AllowTrailingData(opts.trailing)
	log.Debugf("parsing %s (chunk=%d jwcc=%v)", path, opts.chunk, opts.jwcc)
	if err := p.ParseReader(r, buf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if p.Truncated() {
		log.Warningf("%s: some names or values were truncated", path)
	}
	return nil
}

// standardize reads JWCC text from r and returns a reader for the equivalent
// standard JSON. Comments and trailing commas are replaced by whitespace, so
// locations reported by the parser still match the original text.
func standardize(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JWCC: %w", err)
	}
	v.Standardize()
	return bytes.NewReader(v.Pack()), nil
}
