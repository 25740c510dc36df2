package models

// StaticProjects is the hand-curated project list bundled with the site.
// Fetched repositories that collide with an entry here (same GitHub URL or
// name) are dropped during aggregation so a project never appears twice.
var StaticProjects = []FormattedRepo{
	{
		Image:       "/images/projects/folio.png",
		Category:    CategoryFullstack,
		Name:        "folio",
		Description: "This portfolio site and its API backend.",
		Link:        "https://folio.dev",
		Github:      "https://github.com/folio-dev/folio",
		Language:    "typescript",
		Tags:        []string{"portfolio", "fullstack"},
	},
	{
		Image:       "/images/projects/storefront.png",
		Category:    CategoryFrontend,
		Name:        "storefront-theme",
		Description: "Custom Shopify storefront theme with liquid sections.",
		Link:        "https://storefront-demo.dev",
		Github:      "https://github.com/folio-dev/storefront-theme",
		Language:    "shopify",
		Tags:        []string{"shopify", "frontend"},
	},
}
