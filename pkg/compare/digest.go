package compare

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"

	"github.com/jvdberg/fileregress/pkg/storage"
)

// DigestComparator compares files by streaming a content digest over each
// side. A size pre-check short-circuits without reading any content.
type DigestComparator struct {
	name       string
	newHash    func() hash.Hash
	bufferSize int
}

// NewMD5Comparator creates a comparator using streaming MD5 digests.
// MD5 is the default method; collision risk is irrelevant for regression
// detection against one's own prior outputs.
func NewMD5Comparator(bufferSize int) *DigestComparator {
	return newDigestComparator("md5", md5.New, bufferSize)
}

// NewSHA256Comparator creates a comparator using streaming SHA-256 digests.
func NewSHA256Comparator(bufferSize int) *DigestComparator {
	return newDigestComparator("sha256", sha256.New, bufferSize)
}

func newDigestComparator(name string, newHash func() hash.Hash, bufferSize int) *DigestComparator {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &DigestComparator{
		name:       name,
		newHash:    newHash,
		bufferSize: bufferSize,
	}
}

// Compare compares two files by content digest
func (c *DigestComparator) Compare(ctx context.Context, base, test storage.Backend, basePath, testPath string) (*Comparison, error) {
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

	baseSum, err := c.digest(ctx, base, basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to compute base digest: %w", err)
	}

	testSum, err := c.digest(ctx, test, testPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compute test digest: %w", err)
	}

	if baseSum == testSum {
		return &Comparison{
			BasePath: basePath,
			TestPath: testPath,
			Result:   Same,
			Reason:   fmt.Sprintf("%s digests match", c.name),
		}, nil
	}

	return &Comparison{
		BasePath: basePath,
		TestPath: testPath,
		Result:   Different,
		Reason:   fmt.Sprintf("%s digest mismatch: base=%s, test=%s", c.name, truncateSum(baseSum), truncateSum(testSum)),
	}, nil
}

// digest streams the file content through the hash function
func (c *DigestComparator) digest(ctx context.Context, backend storage.Backend, path string) (string, error) {
	reader, err := backend.Read(ctx, path)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	h := c.newHash()
	buf := make([]byte, c.bufferSize)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := reader.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Name returns the comparator name
func (c *DigestComparator) Name() string {
	return c.name
}

// truncateSum shortens a digest for display in failure messages
func truncateSum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
