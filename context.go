// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Context is the top-level, independently instantiable container for a
// registry, a CRS cache, a grid provider and a logger. Replaces a single
// process-wide global registry so that embedding applications can run more
// than one independent CRS universe in the same process.
type Context struct {
	registry *Registry
	cache    *crsCache
	grids    GridProvider
	log      logrus.FieldLogger

	mu sync.RWMutex
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithFetchCollaborator installs the remote-fetch callback the registry
// consults for AUTHORITY:CODE lookups that miss the local table.
func WithFetchCollaborator(fc FetchCollaborator) ContextOption {
	return func(c *Context) { c.registry.fetch = fc }
}

// WithGridProvider installs the NTv2 grid-shift collaborator.
func WithGridProvider(gp GridProvider) ContextOption {
	return func(c *Context) { c.grids = gp }
}

// WithLogger overrides the default logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) ContextOption {
	return func(c *Context) { c.log = l }
}

// NewContext builds a Context with a freshly seeded registry, an empty CRS
// cache, no grid provider, and logrus.StandardLogger() as the default
// logger.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		registry: newRegistry(),
		cache:    newCRSCache(),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogger swaps the logger used for registry fallthrough and grid-miss
// diagnostics.
func (c *Context) SetLogger(l logrus.FieldLogger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l
}

func (c *Context) logger() logrus.FieldLogger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.log
}

// Register parses definition via the front-end selected by its first
// non-whitespace character and stores the resulting CRS under name in the
// registry, per the register(name, definition_text) overload.
func (c *Context) Register(name, definition string) error {
	p, err := ParseDefinition(definition)
	if err != nil {
		return err
	}
	crs, err := BuildCRS(p)
	if err != nil {
		return err
	}
	crs.Code = name
	c.registry.put(name, crs)
	return nil
}

// Get resolves code to a built CRS, consulting the cache, the registry, and
// (on a registry miss for an AUTHORITY:CODE pattern) the fetch collaborator.
func (c *Context) Get(code string) (*CRS, error) {
	if crs, ok := c.cache.get(code); ok {
		return crs, nil
	}
	crs, err := c.registry.get(code, c.logger())
	if err != nil {
		return nil, err
	}
	c.cache.put(code, crs)
	return crs, nil
}

// applyGridShift consults the grid provider for each named grid in order,
// returning the first that contains the point; inverse selects the
// backward (iterative) shift direction.
func (c *Context) applyGridShift(names []string, lam, phi float64, inverse bool) (float64, float64, error) {
	if c.grids == nil {
		return 0, 0, newFetchError("", "no grid provider configured", false)
	}
	for _, name := range names {
		gf, err := c.grids.Get(name)
		if err != nil {
			return 0, 0, err
		}
		if gf == nil {
			continue
		}
		dlam, dphi, ok := gf.shiftAt(lam, phi)
		if !ok {
			continue
		}
		if !inverse {
			return lam + dlam, phi + dphi, nil
		}
		return gf.inverseShiftAt(lam, phi)
	}
	c.logger().WithField("grids", names).Warn("no subgrid contains point")
	return 0, 0, newDomainError("nadgrids", "no subgrid contains point")
}
