// Package nav builds and resolves the site paths the UI navigates to and
// performs the navigation, either in the system browser or in a pager.
package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnknownRoute is returned for paths no page serves
var ErrUnknownRoute = errors.New("unknown route")

// RouteKind identifies a page
type RouteKind int

const (
	RouteCompound RouteKind = iota + 1
	RouteSearch
	RouteElement
)

func (k RouteKind) String() string {
	switch k {
	case RouteCompound:
		return "compound"
	case RouteSearch:
		return "search"
	case RouteElement:
		return "element"
	default:
		return "unknown"
	}
}

// Route is a parsed path
type Route struct {
	Kind         RouteKind
	CompoundID   string
	Query        string
	AtomicNumber int
}

// CompoundPath is the detail page of a compound
func CompoundPath(id string) string {
	return "/compound/" + url.PathEscape(id)
}

// SearchPath is the page-level search view for query
func SearchPath(query string) string {
	return "/search?q=" + url.QueryEscape(query)
}

// ElementPath is the detail page of an element
func ElementPath(atomicNumber int) string {
	return "/element/" + strconv.Itoa(atomicNumber)
}

// Parse resolves a path produced by the builders above
func Parse(path string) (Route, error) {
	u, err := url.Parse(path)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %s: %v", ErrUnknownRoute, path, err)
	}

	switch {
	case u.Path == "/search":
		return Route{Kind: RouteSearch, Query: u.Query().Get("q")}, nil

	case strings.HasPrefix(u.Path, "/compound/"):
		seg := strings.TrimPrefix(u.EscapedPath(), "/compound/")
		if seg == "" || strings.Contains(seg, "/") {
			break
		}
		id, err := url.PathUnescape(seg)
		if err != nil {
			break
		}
		return Route{Kind: RouteCompound, CompoundID: id}, nil

	case strings.HasPrefix(u.Path, "/element/"):
		n, err := strconv.Atoi(strings.TrimPrefix(u.Path, "/element/"))
		if err != nil || n <= 0 {
			break
		}
		return Route{Kind: RouteElement, AtomicNumber: n}, nil
	}
	return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
}
