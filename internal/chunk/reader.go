package chunk

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Summary aggregates what was found inside one tar archive.
type Summary struct {
	Archive string
	Chunks  int   // .gz members decoded
	Records int   // records decoded across all chunks
	Invalid int   // records failing the V6 sanity checks
	Skipped int   // non-chunk members ignored
	Bytes   int64 // compressed size of the decoded chunks
}

// InspectArchive walks the tar file at path and decodes every gzip-compressed
// training chunk inside it. limit > 0 stops after that many records; 0 reads
// the whole archive.
func InspectArchive(path string, limit int) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	sum := &Summary{Archive: path}
	tr := tar.NewReader(f)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(hdr.Name, ".gz") {
			sum.Skipped++
			continue
		}

		if err := sum.readChunk(tr, limit); err != nil {
			return nil, fmt.Errorf("chunk %s: %w", hdr.Name, err)
		}
		sum.Chunks++
		sum.Bytes += hdr.Size

		if limit > 0 && sum.Records >= limit {
			break
		}
	}
	return sum, nil
}

// readChunk decodes records from one gzip member until the stream ends or
// the record limit is hit. A truncated trailing record ends the chunk; any
// other decode failure fails the archive.
func (s *Summary) readChunk(r io.Reader, limit int) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("gunzip: %w", err)
	}
	defer gz.Close()

	for {
		if limit > 0 && s.Records >= limit {
			return nil
		}
		rec, err := ReadRecord(gz)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decoding record %d: %w", s.Records+1, err)
		}
		if rec.Version != Version {
			return fmt.Errorf("unsupported training data version %d (want %d)", rec.Version, Version)
		}
		s.Records++
		if !rec.Valid() {
			s.Invalid++
		}
	}
}
