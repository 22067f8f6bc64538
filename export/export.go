// Package export serializes diff results as JSON, optionally brotli
// compressed, for rendering layers and test fixtures.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"

	"transcriptdiff/logger"
	"transcriptdiff/text"
)

// CompressedExt marks files holding brotli-compressed JSON
const CompressedExt = ".br"

// compressionLevel trades size for speed; results are written once per comparison
const compressionLevel = 5

// Write encodes result as indented JSON to w, brotli compressed when compress is set.
func Write(w io.Writer, result *text.Result, compress bool) error {
	if !compress {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	bw := brotli.NewWriterLevel(w, compressionLevel)
	if _, err := bw.Write(data); err != nil {
		return fmt.Errorf("failed to compress result: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("failed to close brotli writer: %w", err)
	}
	return nil
}

// Read decodes a result written by Write.
func Read(r io.Reader, compressed bool) (*text.Result, error) {
	if compressed {
		r = brotli.NewReader(r)
	}
	var result text.Result
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &result, nil
}

// WriteFile writes result to path, compressing when path ends in ".br".
func WriteFile(path string, result *text.Result) error {
	defer logger.Trace("export.WriteFile")()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, result, IsCompressed(path)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	logger.Debug("wrote diff result to %s", path)
	return nil
}

// ReadFile reads a result from path, decompressing when path ends in ".br".
func ReadFile(path string) (*text.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, IsCompressed(path))
}

// IsCompressed reports whether path names a brotli-compressed export
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, CompressedExt)
}
