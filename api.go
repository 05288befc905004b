package crsgo

// TransformRecords transforms a point between two already-built CRS records,
// the first of the public API's two transform overloads.
func (c *Context) TransformRecords(src, dst *CRS, p Point, enforceAxis bool) (Point, error) {
	return c.Transform(src, dst, p, enforceAxis)
}

// TransformCodes resolves srcCode and dstCode through the registry/cache and
// transforms p between them with axis enforcement on, the second overload.
func (c *Context) TransformCodes(srcCode, dstCode string, p Point) (Point, error) {
	src, err := c.Get(srcCode)
	if err != nil {
		return Point{}, err
	}
	dst, err := c.Get(dstCode)
	if err != nil {
		return Point{}, err
	}
	return c.Transform(src, dst, p, true)
}

// Converter is a bound src->dst transform pair: pure sugar over
// Context.Transform that avoids re-resolving either CRS per call.
type Converter struct {
	ctx      *Context
	src, dst *CRS
}

// NewConverter resolves src and dst through the registry/cache and returns a
// bound Converter between them.
func (c *Context) NewConverter(srcCode, dstCode string) (*Converter, error) {
	src, err := c.Get(srcCode)
	if err != nil {
		return nil, err
	}
	dst, err := c.Get(dstCode)
	if err != nil {
		return nil, err
	}
	return &Converter{ctx: c, src: src, dst: dst}, nil
}

// Forward transforms a point from src to dst.
func (cv *Converter) Forward(p Point) (Point, error) {
	return cv.ctx.Transform(cv.src, cv.dst, p, true)
}

// Inverse transforms a point from dst back to src.
func (cv *Converter) Inverse(p Point) (Point, error) {
	return cv.ctx.Transform(cv.dst, cv.src, p, true)
}
