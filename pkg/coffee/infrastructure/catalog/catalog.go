// Package catalog serves the fixed product list. The storefront sells five
// coffees; there is no admin surface for editing them.
package catalog

import (
	"strings"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

var products = []model.Product{
	{
		ID:          1,
		Name:        "Latte",
		PriceCents:  255,
		Image:       "https://www.brighteyedbaker.com/wp-content/uploads/2024/03/Spanish-Iced-Latte.jpg",
		Description: "A delicious blend of espresso and steamed milk.",
		Ingredients: []string{"Espresso", "Steamed Milk", "Milk Foam"},
		Rating:      4.5,
	},
	{
		ID:          2,
		Name:        "Americano",
		PriceCents:  200,
		Image:       "https://images.ctfassets.net/v601h1fyjgba/1vlXSpBbgUo9yLzh71tnOT/a1afdbe54a383d064576b5e628035f04/Iced_Americano.jpg",
		Description: "Espresso diluted with hot water for a rich flavor.",
		Ingredients: []string{"Espresso", "Hot Water"},
		Rating:      4.3,
	},
	{
		ID:          3,
		Name:        "Cappuccino",
		PriceCents:  265,
		Image:       "https://130529051.cdn6.editmysite.com/uploads/1/3/0/5/130529051/V3O3FIVEAP2WHOYTSKFLMVCN.jpeg",
		Description: "Espresso topped with frothy steamed milk.",
		Ingredients: []string{"Espresso", "Steamed Milk", "Milk Foam"},
		Rating:      4.7,
	},
	{
		ID:          4,
		Name:        "Espresso",
		PriceCents:  200,
		Image:       "https://images.squarespace-cdn.com/content/v1/5e5be427805a63534f1344ad/530ba631-0ae2-43f4-bf30-b4cd1113361c/Brewing-With-Dani-home-barista-online-course-iced-espresso-drink-iced-shaken-espresso.jpeg",
		Description: "Strong and bold coffee served in a small cup.",
		Ingredients: []string{"Espresso"},
		Rating:      4.8,
	},
	{
		ID:          5,
		Name:        "Mocha",
		PriceCents:  255,
		Image:       "https://vibrantlygfree.com/wp-content/uploads/2023/07/iced-mocha-1.jpg",
		Description: "A chocolate-flavored variant of a latte.",
		Ingredients: []string{"Espresso", "Steamed Milk", "Chocolate Syrup", "Whipped Cream"},
		Rating:      4.6,
	},
}

func NewStaticCatalog() model.Catalog {
	return &staticCatalog{products: products}
}

type staticCatalog struct {
	products []model.Product
}

func (c *staticCatalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *staticCatalog) Find(id int) (model.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

// Search filters products by a case-insensitive name fragment. An empty query
// returns the whole catalog.
func Search(c model.Catalog, query string) []model.Product {
	all := c.Products()
	if query == "" {
		return all
	}
	query = strings.ToLower(query)
	filtered := make([]model.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
