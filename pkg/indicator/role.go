package indicator

import (
	"fmt"
	"strings"

	"github.com/raykavin/pantalib/pkg/core"
)

// Role is the input channel an indicator parameter consumes
type Role int

const (
	RoleOpen Role = iota
	RoleHigh
	RoleLow
	RoleClose
	RoleVolume
	RoleReal // generic real-valued series, fed with close when the input is a table
)

var roleColumns = map[Role]string{
	RoleOpen:   core.ColumnOpen,
	RoleHigh:   core.ColumnHigh,
	RoleLow:    core.ColumnLow,
	RoleClose:  core.ColumnClose,
	RoleVolume: core.ColumnVolume,
	RoleReal:   core.ColumnClose,
}

// String returns the role name
func (r Role) String() string {
	if r == RoleReal {
		return "real"
	}
	if column, ok := roleColumns[r]; ok {
		return column
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Column returns the dataframe column that feeds the role
func (r Role) Column() string {
	return roleColumns[r]
}

// ParseRole maps a declared input parameter name to its role. Names holding
// "real" denote a generic series.
func ParseRole(param string) (Role, error) {
	name := strings.ToLower(param)
	if strings.Contains(name, "real") {
		return RoleReal, nil
	}

	for role, column := range roleColumns {
		if role != RoleReal && column == name {
			return role, nil
		}
	}

	return 0, fmt.Errorf("unknown input parameter %q", param)
}
