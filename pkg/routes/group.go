package routes

import "net/http"

// Group organizes routes under a common prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}

// Flatten expands the given groups into a flat route slice in registration
// order, with each route's pattern expanded to its full path under prefix.
func Flatten(prefix string, groups ...Group) []Route {
	flat := make([]Route, 0)
	for _, group := range groups {
		flat = append(flat, flattenGroup(prefix, group)...)
	}
	return flat
}

func flattenGroup(parentPrefix string, group Group) []Route {
	fullPrefix := parentPrefix + group.Prefix
	flat := make([]Route, 0, len(group.Routes))
	for _, route := range group.Routes {
		flat = append(flat, Route{
			Method:  route.Method,
			Pattern: fullPrefix + route.Pattern,
			Handler: route.Handler,
		})
	}
	for _, child := range group.Children {
		flat = append(flat, flattenGroup(fullPrefix, child)...)
	}
	return flat
}
