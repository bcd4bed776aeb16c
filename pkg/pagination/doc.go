// Package pagination provides the listing query DTO (order, page, take, q)
// and the page metadata returned with every listing, both declared with the
// field builders so they are validated and published like any other DTO.
package pagination
