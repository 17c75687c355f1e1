package accessgrid

import (
	"compress/gzip"
	"io"
)

// WriteGzip writes g to w as a gzip-compressed Access Grid stream. No
// example repo in this module's lineage imports a third-party compression
// library, so this wraps the standard library's compress/gzip directly
// rather than reaching for an external codec.
func (g *Grid) WriteGzip(w io.Writer) error {
	gw := gzip.NewWriter(w)
	if _, err := g.WriteTo(gw); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

// ReadGzip reads a gzip-compressed Access Grid stream previously written by
// WriteGzip (or any gzip wrapper around WriteTo's byte layout).
func ReadGzip(r io.Reader) (*Grid, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, newTruncatedErr("accessgrid.ReadGzip", err)
	}
	defer gr.Close()
	return ReadFrom(gr)
}
