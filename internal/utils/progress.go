package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// DescDownloading is the progress bar label for the archive download.
const DescDownloading = "Downloading"

// NewDownloadBar creates a progress bar for a download of the given size.
// Pass -1 for an unknown content length to get spinner mode. The bar renders
// to w (stderr for the CLI); pass io.Discard to silence it.
func NewDownloadBar(size int64, w io.Writer) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(DescDownloading),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	}

	if size < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	}

	return progressbar.NewOptions64(size, opts...)
}
