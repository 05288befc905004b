// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

import "fmt"

// ParseError reports a malformed textual CRS definition: an unknown key or
// an unparsable value. A code that the registry cannot resolve is reported
// as a FetchError instead.
type ParseError struct {
	Fragment string // the offending token or sub-string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("crsgo: parse error at %q: %s", e.Fragment, e.Reason)
}

// DomainError reports that a coordinate fell outside the valid region of a
// projection primitive, or that an iterative series failed to converge.
type DomainError struct {
	Proj   string // projName of the offending projection, may be empty
	Reason string
}

func (e *DomainError) Error() string {
	if e.Proj == "" {
		return fmt.Sprintf("crsgo: domain error: %s", e.Reason)
	}
	return fmt.Sprintf("crsgo: domain error in %q: %s", e.Proj, e.Reason)
}

// FetchError reports that a remote registry lookup failed, either because
// the code was not found or because the collaborator could not be reached.
type FetchError struct {
	Code    string
	Reason  string
	NoMatch bool // true when the remote collaborator affirmatively reported "not found"
}

func (e *FetchError) Error() string {
	if e.NoMatch {
		return fmt.Sprintf("crsgo: unknown CRS code %q", e.Code)
	}
	return fmt.Sprintf("crsgo: fetch error for %q: %s", e.Code, e.Reason)
}

func newParseError(fragment, reason string) error {
	return &ParseError{Fragment: fragment, Reason: reason}
}

func newDomainError(proj, reason string) error {
	return &DomainError{Proj: proj, Reason: reason}
}

func newFetchError(code, reason string, noMatch bool) error {
	return &FetchError{Code: code, Reason: reason, NoMatch: noMatch}
}
