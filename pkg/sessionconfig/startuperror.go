// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import "fmt"

// Fatal startup conditions. Everything else degrades to a warning and a
// deterministic default.
var (
	ErrInstallPathNotFound   = fmt.Errorf("unable to determine install path")
	ErrInvalidProgramMode    = fmt.Errorf("invalid program mode")
	ErrOverlayValidation     = fmt.Errorf("overlay validation failed")
	ErrVerifyHomeUnavailable = fmt.Errorf("unable to create verification home directory")
)

const (
	InstallPathNotFound = "INSTALL_PATH_NOT_FOUND"
	InvalidProgramMode  = "INVALID_PROGRAM_MODE"
	OverlayRejected     = "OVERLAY_REJECTED"
	VerifyHomeFailed    = "VERIFY_HOME_FAILED"
)

// StartupError is a fatal resolution failure. The process cannot continue;
// callers map it to a failing exit status.
type StartupError struct {
	Code  string
	Cause error
}

func (e *StartupError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Cause.Error()
	}
	return e.Code
}

func (e *StartupError) Unwrap() error {
	return e.Cause
}

var _ error = (*StartupError)(nil)

func newStartupError(code string, cause error) *StartupError {
	return &StartupError{Code: code, Cause: cause}
}
