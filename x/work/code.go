package work

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/auth"
)

// NewCode returns the first version of the deployable work code.
func NewCode() *app.Code {
	return &app.Code{
		Name:     "work",
		Version:  "1.0.0",
		Schema:   map[string]uint32{packageName: 1, "shares": 1, "access": 1},
		InitPath: pathInitializerMsg,
		Msgs:     append(Msgs(), access.Msgs()...),
		Routes: func(r cosmicroses.Registry) {
			RegisterRoutes(r, auth.Authenticate{})
		},
	}
}

// NewCodeV2 returns the second version of the deployable work code. It
// migrates the work storage to schema 2.
func NewCodeV2() *app.Code {
	return &app.Code{
		Name:     "work",
		Version:  "2.0.0",
		Schema:   map[string]uint32{packageName: 2, "shares": 1, "access": 1},
		InitPath: pathInitializerMsg,
		Msgs:     append(MsgsV2(), access.Msgs()...),
		Routes: func(r cosmicroses.Registry) {
			RegisterRoutesV2(r, auth.Authenticate{})
		},
	}
}
