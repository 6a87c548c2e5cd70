package wordnet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// Load reads the synsets and hypernyms files concurrently and builds the
// index with New. Paths ending in ".gz" are gunzipped on the fly.
// Cancelling ctx aborts whichever read is still in flight.
func Load(ctx context.Context, synsetsPath, hypernymsPath string, opts ...Option) (*WordNet, error) {
	ctx, span := tracer.Start(ctx, "wordnet.Load")
	defer span.End()
	span.SetAttributes(
		attribute.String("synsets.path", synsetsPath),
		attribute.String("hypernyms.path", hypernymsPath),
	)

	var synsets, hypernyms []byte
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		synsets, err = readFile(egCtx, synsetsPath)
		return err
	})
	eg.Go(func() error {
		var err error
		hypernyms, err = readFile(egCtx, hypernymsPath)
		return err
	})
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return nil, err
	}

	wn, err := New(bytes.NewReader(synsets), bytes.NewReader(hypernyms), opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("synsets", wn.Len()),
		attribute.Int("nouns", len(wn.sorted)),
	)

	return wn, nil
}

// readFile returns the (decompressed) contents of path.
func readFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNilSource)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordnet: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("wordnet: gunzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(ctxReader{ctx: ctx, r: r})
	if err != nil {
		return nil, fmt.Errorf("wordnet: read %s: %w", path, err)
	}

	return data, nil
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
