package offline

import (
	"net/url"
	"strings"
)

// Class tells which caching strategy applies to a request.
type Class int

const (
	// ClassStatic covers same-origin page assets and font resources:
	// cache-first.
	ClassStatic Class = iota
	// ClassVolatile covers definition-API responses: network-first.
	ClassVolatile
)

func (c Class) String() string {
	if c == ClassVolatile {
		return "volatile"
	}
	return "static"
}

// Classify maps a request URL to its strategy class. Requests whose host
// matches the definitions-API host are volatile; everything else is
// static.
func Classify(u *url.URL, apiHost string) Class {
	if apiHost != "" && strings.EqualFold(u.Host, apiHost) {
		return ClassVolatile
	}
	return ClassStatic
}
