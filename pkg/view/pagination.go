package view

import "fmt"

// PageLink is one ordinal link in the pagination row.
type PageLink struct {
	Number int
	URL    string
	Active bool
}

// PageLinks builds the 1..totalPages link row. The active page is flagged
// for styling but its link stays navigable like any other. Zero totalPages
// yields no links.
func PageLinks(basePath string, active, totalPages int) []PageLink {
	if totalPages < 1 {
		return nil
	}
	links := make([]PageLink, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		links = append(links, PageLink{
			Number: n,
			URL:    fmt.Sprintf("%s?page=%d", basePath, n),
			Active: n == active,
		})
	}
	return links
}
