package api

// Route identifies one entry of the dispatch table.
type Route int

const (
	// RouteUnsupported is any route key not listed below.
	RouteUnsupported Route = iota
	RouteCreateItem
	RouteListItems
	RouteGetItem
	RouteUpdateItem
	RouteReplaceItem
	RouteDeleteItem
)

// routeKeys maps API Gateway route keys (method + path template) to routes.
var routeKeys = map[string]Route{
	"POST /items":        RouteCreateItem,
	"GET /items":         RouteListItems,
	"GET /items/{id}":    RouteGetItem,
	"PATCH /items/{id}":  RouteUpdateItem,
	"PUT /items/{id}":    RouteReplaceItem,
	"DELETE /items/{id}": RouteDeleteItem,
}

// ParseRoute returns the route for an API Gateway route key.
// Unknown keys yield RouteUnsupported.
func ParseRoute(routeKey string) Route {
	if r, ok := routeKeys[routeKey]; ok {
		return r
	}
	return RouteUnsupported
}

// String returns the route key, or "unsupported".
func (r Route) String() string {
	switch r {
	case RouteCreateItem:
		return "POST /items"
	case RouteListItems:
		return "GET /items"
	case RouteGetItem:
		return "GET /items/{id}"
	case RouteUpdateItem:
		return "PATCH /items/{id}"
	case RouteReplaceItem:
		return "PUT /items/{id}"
	case RouteDeleteItem:
		return "DELETE /items/{id}"
	default:
		return "unsupported"
	}
}
