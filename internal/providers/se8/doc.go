// Package se8 implements providers.Source for the se8.us comics catalog.
// It builds the site's category, search and API URLs from host filters and
// extracts series, chapters and page images from the returned HTML/JSON.
package se8
