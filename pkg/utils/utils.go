// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"regexp"
)

var envVarRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func IsValidEnvVarIdentifier(key string) bool {
	return envVarRegex.MatchString(key)
}
