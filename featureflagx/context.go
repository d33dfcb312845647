package featureflagx

import (
	"context"
)

type routerKeyType uint8

var routerKey = routerKeyType(1)

func NewContext(ctx context.Context, r *Router) context.Context {
	return context.WithValue(ctx, routerKey, r)
}

func FromContext(ctx context.Context) (*Router, bool) {
	val := ctx.Value(routerKey)
	r, ok := val.(*Router)
	if !ok || r == nil {
		return nil, false
	}
	return r, true
}
