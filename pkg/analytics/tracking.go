package analytics

import (
	"net/url"
	"strconv"
)

// Product is the line-item view of a catalog product, as it appears in
// add_to_cart events.
type Product struct {
	ID    int
	Name  string
	Price float64
}

// TrackPageView records a route change. The page title carries the store
// prefix and the location is the configured origin plus the path.
func (e *Emitter) TrackPageView(pageName, path string) {
	e.Emit("page_view", map[string]any{
		"event_category": CategoryNavigation,
		"page_title":     "TeaVault - " + pageName,
		"page_location":  e.origin + path,
		"page_path":      path,
	})
}

// TrackFormStart records the first interaction with a form.
func (e *Emitter) TrackFormStart(formName string) {
	e.Emit("form_start", map[string]any{
		"event_category": CategoryEngagement,
		"form_name":      formName,
		"event_label":    "form_interaction_start",
	})
}

// TrackFormSubmit records a completed form along with how many fields the
// visitor filled. The count arrives finished from the form layer; nothing
// here validates it.
func (e *Emitter) TrackFormSubmit(formName string, fieldsFilled int) {
	e.Emit("form_submit", map[string]any{
		"event_category":     CategoryEngagement,
		"form_name":          formName,
		"event_label":        "form_completed",
		"form_fields_filled": fieldsFilled,
	})
}

func (e *Emitter) TrackDownloadStart(fileName, fileType string) {
	e.Emit("file_download_start", map[string]any{
		"event_category":  CategoryEngagement,
		"event_label":     "download_initiated",
		"file_name":       fileName,
		"file_extension":  fileType,
		"download_method": "direct_link",
	})
}

func (e *Emitter) TrackDownloadComplete(fileName, fileType string) {
	e.Emit("file_download", map[string]any{
		"event_category": CategoryEngagement,
		"event_label":    "download_completed",
		"file_name":      fileName,
		"file_extension": fileType,
	})
}

// TrackOutboundClick records a click on an external link. The domain is
// derived from the URL; an unparseable URL yields an empty domain rather
// than an error.
func (e *Emitter) TrackOutboundClick(platform, linkURL string) {
	e.Emit("click", map[string]any{
		"event_category": CategoryOutbound,
		"event_label":    platform,
		"link_url":       linkURL,
		"link_domain":    linkDomain(linkURL),
		"link_type":      "external",
	})
}

// TrackAddToCart records a cart intent for one product. Every event carries
// a single line item with quantity 1 and the bare product price as its
// value, regardless of how many units the product page had selected.
func (e *Emitter) TrackAddToCart(p Product) {
	e.Emit("add_to_cart", map[string]any{
		"event_category": CategoryEcommerce,
		"event_label":    p.Name,
		"value":          p.Price,
		"currency":       "USD",
		"items": []map[string]any{{
			"item_id":   strconv.Itoa(p.ID),
			"item_name": p.Name,
			"category":  "Tea",
			"quantity":  1,
			"price":     p.Price,
		}},
	})
}

// TrackNavigation records a navigation click. An empty method defaults to
// "menu".
func (e *Emitter) TrackNavigation(destination, method string) {
	if method == "" {
		method = "menu"
	}

	e.Emit("navigation_click", map[string]any{
		"event_category":    CategoryNavigation,
		"event_label":       destination,
		"navigation_method": method,
		"destination_page":  destination,
	})
}

// TrackCTAClick records a call-to-action button click, such as the hero
// "Shop Now" button.
func (e *Emitter) TrackCTAClick(label, buttonText, buttonLocation string) {
	e.Emit("click", map[string]any{
		"event_category":  CategoryCTA,
		"event_label":     label,
		"button_text":     buttonText,
		"button_location": buttonLocation,
	})
}

func linkDomain(linkURL string) string {
	u, err := url.Parse(linkURL)
	if err != nil {
		return ""
	}

	return u.Hostname()
}
