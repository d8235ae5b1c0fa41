// Package hateoas builds the hypermedia links embedded in property responses.
package hateoas

import (
	"imoveis/cmd/internal/contract"
	"net/http"
	"strconv"
	"strings"
)

// ResourceLinks returns the full link set of a single property: self,
// update, delete and the collection it belongs to. base is the absolute
// URL of the collection, e.g. http://host/properties.
func ResourceLinks(id int, base string) contract.Links {
	base = strings.TrimRight(base, "/")
	href := ResourceURL(id, base)

	return contract.Links{
		contract.RelSelf:       {Href: href, Method: http.MethodGet},
		contract.RelUpdate:     {Href: href, Method: http.MethodPut},
		contract.RelDelete:     {Href: href, Method: http.MethodDelete},
		contract.RelCollection: {Href: base, Method: http.MethodGet},
	}
}

// MemberLinks returns the reduced link set used for items of a collection.
func MemberLinks(id int, base string) contract.Links {
	return contract.Links{
		contract.RelSelf: {Href: ResourceURL(id, base), Method: http.MethodGet},
	}
}

// ResourceURL is the canonical URL of one property.
func ResourceURL(id int, base string) string {
	return strings.TrimRight(base, "/") + "/" + strconv.Itoa(id)
}
