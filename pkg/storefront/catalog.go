// Package storefront carries the static TeaVault content and the thin page
// collaborators that feed the analytics emitter: the catalog, the cart
// counter, the contact form, and the download trigger.
package storefront

import (
	"strings"

	"github.com/teavault/storefront-analytics/pkg/analytics"
)

type Product struct {
	ID          int
	Name        string
	Price       float64
	Image       string
	Rating      float64
	Description string
}

// LineItem is the product as add_to_cart events carry it.
func (p Product) LineItem() analytics.Product {
	return analytics.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

type Video struct {
	ID          string
	Title       string
	Duration    string
	Description string
}

// Catalog is the static storefront content. It is plain data: pages hand it
// around by value and nothing mutates it after construction.
type Catalog struct {
	Products      []Product
	FeaturedVideo Video
	Videos        []Video
}

func DefaultCatalog() Catalog {
	return Catalog{
		Products: []Product{
			{
				ID:          1,
				Name:        "Organic Green Tea",
				Price:       24.99,
				Rating:      4.8,
				Description: "Premium organic green tea with a delicate flavor profile",
			},
			{
				ID:          2,
				Name:        "Herbal Wellness Blend",
				Price:       32.99,
				Rating:      4.9,
				Description: "A soothing blend of herbs for relaxation and wellness",
			},
			{
				ID:          3,
				Name:        "Mountain Fresh Leaves",
				Price:       28.99,
				Rating:      4.7,
				Description: "Fresh mountain tea leaves with an invigorating taste",
			},
			{
				ID:          4,
				Name:        "Earl Grey Supreme",
				Price:       26.99,
				Rating:      4.6,
				Description: "Classic Earl Grey with bergamot and cornflower petals",
			},
			{
				ID:          5,
				Name:        "Dragon Well Green",
				Price:       35.99,
				Rating:      4.8,
				Description: "Traditional Chinese green tea with a smooth finish",
			},
			{
				ID:          6,
				Name:        "Chamomile Dreams",
				Price:       22.99,
				Rating:      4.5,
				Description: "Calming chamomile flowers for a peaceful evening",
			},
		},
		FeaturedVideo: Video{
			ID:          "tea-brewing-guide",
			Title:       "The Art of Tea Brewing - Complete Guide",
			Description: "Learn the traditional methods of brewing the perfect cup of tea with our master tea sommelier.",
		},
		Videos: []Video{
			{ID: "green-tea-basics", Title: "Green Tea Brewing Basics", Duration: "8:45"},
			{ID: "black-tea-traditions", Title: "Black Tea Traditions", Duration: "12:30"},
			{ID: "herbal-tea-benefits", Title: "Herbal Tea Benefits", Duration: "6:20"},
			{ID: "tea-ceremony-etiquette", Title: "Tea Ceremony Etiquette", Duration: "15:10"},
			{ID: "oolong-tea-mastery", Title: "Oolong Tea Mastery", Duration: "11:25"},
			{ID: "tea-storage-tips", Title: "Tea Storage Tips", Duration: "4:55"},
		},
	}
}

// FindProduct looks a product up by id.
func (c Catalog) FindProduct(id int) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}

// Featured returns the products shown on the home page.
func (c Catalog) Featured() []Product {
	if len(c.Products) < 2 {
		return c.Products
	}

	return c.Products[:2]
}

// PageName maps a route path to the page name used in page_view events.
func PageName(path string) string {
	switch path {
	case "/":
		return "Home"
	case "/products":
		return "Products"
	case "/videos":
		return "Videos"
	case "/about":
		return "About"
	case "/contact":
		return "Contact"
	default:
		if strings.HasPrefix(path, "/products/") {
			return "Product Detail"
		}

		return "Unknown"
	}
}
