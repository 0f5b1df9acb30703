package token

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/auth"
)

// NewCode returns the deployable token code.
func NewCode() *app.Code {
	return &app.Code{
		Name:     "token",
		Version:  "1.0.0",
		Schema:   map[string]uint32{packageName: 1, "access": 1},
		InitPath: pathInitMsg,
		Msgs:     append(Msgs(), access.Msgs()...),
		Routes: func(r cosmicroses.Registry) {
			RegisterRoutes(r, auth.Authenticate{})
		},
		Configure: Configure,
	}
}
