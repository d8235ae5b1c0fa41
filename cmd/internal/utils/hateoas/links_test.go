package hateoas

import (
	"imoveis/cmd/internal/contract"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceLinks_Shape(t *testing.T) {
	base := "http://host/properties"

	for _, id := range []int{1, 7, 999, 123456} {
		links := ResourceLinks(id, base)
		href := ResourceURL(id, base)

		assert.Len(t, links, 4)
		assert.Equal(t, contract.Link{Href: href, Method: "GET"}, links[contract.RelSelf])
		assert.Equal(t, contract.Link{Href: href, Method: "PUT"}, links[contract.RelUpdate])
		assert.Equal(t, contract.Link{Href: href, Method: "DELETE"}, links[contract.RelDelete])
		assert.Equal(t, contract.Link{Href: base, Method: "GET"}, links[contract.RelCollection])
	}
}

func TestResourceLinks_TrailingSlash(t *testing.T) {
	links := ResourceLinks(3, "https://api.example.com/properties/")

	assert.Equal(t, "https://api.example.com/properties/3", links[contract.RelSelf].Href)
	assert.Equal(t, "https://api.example.com/properties", links[contract.RelCollection].Href)
}

func TestMemberLinks(t *testing.T) {
	links := MemberLinks(5, "http://host/properties")

	assert.Equal(t, contract.Links{
		contract.RelSelf: {Href: "http://host/properties/5", Method: "GET"},
	}, links)
}
