package compare

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jvdberg/fileregress/pkg/storage"
)

// BinaryComparator compares files byte-by-byte. This is the most thorough
// comparison and reports the exact byte offset where files first differ.
type BinaryComparator struct {
	bufferSize int
}

// NewBinaryComparator creates a new byte-by-byte comparator
func NewBinaryComparator(bufferSize int) *BinaryComparator {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &BinaryComparator{bufferSize: bufferSize}
}

// Compare compares two files byte-by-byte
func (c *BinaryComparator) Compare(ctx context.Context, base, test storage.Backend, basePath, testPath string) (*Comparison, error) {
	baseInfo, err := base.Stat(ctx, basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat base file: %w", err)
	}

	testInfo, err := test.Stat(ctx, testPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat test file: %w", err)
	}

	// Quick check: if sizes differ, files are different
	if baseInfo.Size != testInfo.Size {
		return &Comparison{
			BasePath: basePath,
			TestPath: testPath,
			Result:   Different,
			Reason:   fmt.Sprintf("size mismatch: base=%d, test=%d", baseInfo.Size, testInfo.Size),
		}, nil
	}

	baseReader, err := base.Read(ctx, basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open base file: %w", err)
	}
	defer baseReader.Close()

	testReader, err := test.Read(ctx, testPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open test file: %w", err)
	}
	defer testReader.Close()

	baseBuf := make([]byte, c.bufferSize)
	testBuf := make([]byte, c.bufferSize)

	var offset int64

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, baseErr := baseReader.Read(baseBuf)
		if n > 0 {
			// Read the same amount from the test side; sizes are equal so
			// a short read here means the test file changed underneath us
			if _, testErr := io.ReadFull(testReader, testBuf[:n]); testErr != nil {
				if errors.Is(testErr, io.EOF) || errors.Is(testErr, io.ErrUnexpectedEOF) {
					return &Comparison{
						BasePath: basePath,
						TestPath: testPath,
						Result:   Different,
						Reason:   fmt.Sprintf("test file ended at offset %d but base continues", offset),
					}, nil
				}
				return nil, fmt.Errorf("failed to read test file: %w", testErr)
			}

			if !bytes.Equal(baseBuf[:n], testBuf[:n]) {
				diffOffset := offset
				for i := 0; i < n; i++ {
					if baseBuf[i] != testBuf[i] {
						diffOffset = offset + int64(i)
						break
					}
				}
				return &Comparison{
					BasePath: basePath,
					TestPath: testPath,
					Result:   Different,
					Reason:   fmt.Sprintf("binary content differs at byte offset %d", diffOffset),
				}, nil
			}

			offset += int64(n)
		}

		if baseErr == io.EOF {
			break
		}
		if baseErr != nil {
			return nil, fmt.Errorf("failed to read base file: %w", baseErr)
		}
	}

	return &Comparison{
		BasePath: basePath,
		TestPath: testPath,
		Result:   Same,
		Reason:   fmt.Sprintf("binary content matches (%d bytes)", offset),
	}, nil
}

// Name returns the comparator name
func (c *BinaryComparator) Name() string {
	return "binary"
}
