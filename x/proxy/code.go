package proxy

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/x/auth"
)

// NewCode returns the deployable proxy code. Implementations are resolved
// in given registry when a call is processed, so codes can be registered
// after the proxy.
func NewCode(codes *app.CodeRegistry) *app.Code {
	return &app.Code{
		Name:     packageName,
		Version:  "1.0.0",
		Schema:   map[string]uint32{packageName: 1},
		InitPath: pathDeployMsg,
		Msgs:     Msgs(),
		Routes: func(r cosmicroses.Registry) {
			RegisterRoutes(r, auth.Authenticate{}, codes)
		},
		Fallback: NewForwarder(codes),
	}
}
