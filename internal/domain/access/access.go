// Package access gates mutating operations behind the single administrator
// identity. The administrator is fixed at construction; there is no
// transfer-of-ownership operation.
package access

import (
	"charity_token/internal/domain/value"
)

type Control struct {
	admin value.Identity
}

func NewControl(admin value.Identity) Control {
	return Control{admin: admin}
}

func (c Control) IsAdministrator(caller value.Identity) bool {
	return !caller.IsZero() && caller == c.admin
}
