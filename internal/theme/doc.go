// Package theme applies dashboard branding to the rendered dashboard page.
// It generates the CSS custom property block, performs the literal
// substitutions on the stock page, bundles the stock page and its static
// assets, and hot-reloads branding when the .kittify directory changes.
package theme
