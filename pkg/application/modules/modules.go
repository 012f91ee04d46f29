// Package modules contains the long-running pieces of the application,
// supervised together through one errgroup.
package modules

import (
	"charity_token/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
