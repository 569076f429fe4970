package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sri-geospace/repoasset/internal/archive"
	"github.com/sri-geospace/repoasset/internal/domain"
	"github.com/sri-geospace/repoasset/internal/fetcher"
	"github.com/sri-geospace/repoasset/internal/utils"
)

// StripComponents is the number of leading path components dropped from
// every extracted entry. Branch archives wrap their content in a single
// "<repo>-<branch>" directory.
const StripComponents = 1

// Downloader wires the pipeline: build URL, fetch the branch archive,
// filter its entries by asset, extract into the destination directory.
type Downloader struct {
	repo    domain.Repository
	branch  string
	timeout time.Duration
	destDir string
	quiet   bool
	stdout  io.Writer
	logger  *utils.Logger
	client  *fetcher.Client
}

// DownloaderOptions contains options for creating a Downloader
type DownloaderOptions struct {
	Repo    domain.Repository
	Branch  string
	Timeout time.Duration
	Quiet   bool

	// DestDir is where extracted entries land; the current directory
	// if empty.
	DestDir string

	// Stdout receives the informational lines; os.Stdout if nil.
	Stdout io.Writer

	// Progress receives the download progress bar. Nil disables it.
	Progress io.Writer

	Logger     *utils.Logger
	HTTPClient *http.Client
}

// NewDownloader creates a new Downloader
func NewDownloader(opts DownloaderOptions) *Downloader {
	repo := opts.Repo
	if repo == "" {
		repo = domain.DefaultRepository
	}

	branch := opts.Branch
	if branch == "" {
		branch = domain.DefaultBranch
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	progress := opts.Progress
	if opts.Quiet {
		progress = nil
	}

	client := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:    timeout,
		Logger:     logger.WithComponent("fetcher"),
		HTTPClient: opts.HTTPClient,
		Progress:   progress,
	})

	return &Downloader{
		repo:    repo,
		branch:  branch,
		timeout: timeout,
		destDir: opts.DestDir,
		quiet:   opts.Quiet,
		stdout:  stdout,
		logger:  logger,
		client:  client,
	}
}

// Run downloads the branch archive and extracts the asset's subtree. A
// fetch failure aborts before the archive is opened, so no files are
// written; an extraction failure leaves already-written entries on disk.
func (d *Downloader) Run(ctx context.Context, asset domain.Asset) error {
	d.infof("Downloading files from repo %s", d.repo)

	url := d.repo.ArchiveURL(d.branch)
	d.logger.Debug().Str("url", url).Str("asset", asset.String()).Msg("Starting download")

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	body, err := d.client.Fetch(ctx, url)
	if err != nil {
		return err
	}

	d.infof("Extracting %s", asset)

	reader, err := archive.NewReader(bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer reader.Close()

	filter, err := archive.NewFilter(asset.Pattern(), StripComponents)
	if err != nil {
		return err
	}

	extractor := archive.NewExtractor(archive.ExtractorOptions{
		DestDir: d.destDir,
		Logger:  d.logger.WithComponent("extractor"),
	})

	if _, err := extractor.Extract(reader, filter); err != nil {
		return err
	}

	d.infof("Finished")
	return nil
}

// infof prints an informational line unless quiet.
func (d *Downloader) infof(format string, args ...any) {
	if d.quiet {
		return
	}
	fmt.Fprintf(d.stdout, format+"\n", args...)
}
