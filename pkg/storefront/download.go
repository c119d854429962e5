package storefront

import (
	"time"

	"github.com/teavault/storefront-analytics/pkg/analytics"
)

// Delay between the download trigger and its completion signal, matching
// the page's simulated direct-link download.
const downloadCompleteDelay = 1 * time.Second

// StartCatalogDownload triggers the product catalog PDF download.
func StartCatalogDownload(emitter *analytics.Emitter) *time.Timer {
	return StartDownload(emitter, "product-catalog.pdf", "pdf", downloadCompleteDelay)
}

// StartDownload emits file_download_start immediately and schedules the
// file_download completion event after the delay. The returned timer lets
// the owner cancel the completion on teardown. This timer belongs to the
// download trigger, not the emitter core, which stays timer-free.
func StartDownload(
	emitter *analytics.Emitter,
	fileName, fileType string,
	delay time.Duration,
) *time.Timer {
	emitter.TrackDownloadStart(fileName, fileType)

	return time.AfterFunc(delay, func() {
		emitter.TrackDownloadComplete(fileName, fileType)
	})
}
