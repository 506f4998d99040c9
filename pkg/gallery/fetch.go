package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func isRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

func NewFetcher(logger *zap.Logger, progress io.Writer) *Fetcher {
	return &Fetcher{
		cli:      resty.New().SetDoNotParseResponse(true),
		log:      logger,
		progress: progress,
	}
}

// Fetcher downloads remote source images.
type Fetcher struct {
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status())
	}

	bar := progressbar.NewOptions64(
		resp.RawResponse.ContentLength,
		progressbar.OptionSetWriter(f.progress),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", url)),
	)

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}
	_ = bar.Finish()

	f.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("fetched")
	return buf.Bytes(), nil
}
