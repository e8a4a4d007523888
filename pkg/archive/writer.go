package archive

import (
	"bytes"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/klauspost/compress/zip"
)

// Pack serializes one livery into a new archive
func Pack(l types.Livery) ([]byte, error) {
	return PackAll([]types.Livery{l})
}

// PackAll serializes several liveries into one archive, in order.
// Two entries landing on the same archive path are rejected.
func PackAll(liveries []types.Livery) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	seen := make(map[string]bool)

	for _, l := range liveries {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		for _, entry := range l.Entries() {
			p := entry.Path()
			if seen[p] {
				return nil, errors.Newf(errors.ErrArchiveWrite, "duplicate archive path %s", p).
					WithDetail("livery", l.Key())
			}
			seen[p] = true

			w, err := zw.CreateHeader(&zip.FileHeader{Name: p, Method: zip.Deflate})
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrArchiveWrite, "cannot add %s", p)
			}
			if _, err := w.Write(entry.Data); err != nil {
				return nil, errors.Wrapf(err, errors.ErrArchiveWrite, "cannot write %s", p)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrArchiveWrite, "cannot finish archive")
	}
	return buf.Bytes(), nil
}
