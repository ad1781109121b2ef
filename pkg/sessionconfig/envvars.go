// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

const envVarPrefix = "WB_"

// Variables carrying a one-shot directive are consumed exactly once during
// resolution and queued for removal from the environment, so neither later
// logic nor child processes can observe them.
const (
	// SharedSecretEnvVar
	// WB_SHARED_SECRET carries the secret shared with the parent process. One-shot.
	SharedSecretEnvVar = envVarPrefix + "SHARED_SECRET"

	// MonitorSharedSecretEnvVar
	// WB_MONITOR_SHARED_SECRET carries the monitoring channel secret. One-shot.
	MonitorSharedSecretEnvVar = envVarPrefix + "MONITOR_SHARED_SECRET"

	// SupportingFilePathEnvVar
	// WB_SUPPORTING_FILE_PATH overrides the install root when the executable-relative
	// probes fail (used when running from a build tree).
	SupportingFilePathEnvVar = envVarPrefix + "SUPPORTING_FILE_PATH"

	// UserHomePageEnvVar
	// WB_USER_HOME_PAGE set to "1" shows the user home page. One-shot.
	UserHomePageEnvVar = envVarPrefix + "USER_HOME_PAGE"

	// MultiSessionEnvVar
	// WB_MULTI_SESSION set to "1" enables multiple concurrent sessions per user
	// in server mode. Desktop mode is always multi-session.
	MultiSessionEnvVar = envVarPrefix + "MULTI_SESSION"

	// InitialWorkingDirEnvVar
	// WB_INITIAL_WORKING_DIR overrides the working directory of the new session. One-shot.
	InitialWorkingDirEnvVar = envVarPrefix + "INITIAL_WORKING_DIR"

	// InitialEnvironmentEnvVar
	// WB_INITIAL_ENVIRONMENT is a path to an environment file loaded into the
	// new session. One-shot.
	InitialEnvironmentEnvVar = envVarPrefix + "INITIAL_ENVIRONMENT"

	// InitialProjectEnvVar
	// WB_INITIAL_PROJECT is a path to the project to open, used only when no
	// session scope was given. One-shot.
	InitialProjectEnvVar = envVarPrefix + "INITIAL_PROJECT"

	// DisableProjectSharingEnvVar
	// WB_DISABLE_PROJECT_SHARING, when non-empty, turns off shared projects.
	DisableProjectSharingEnvVar = envVarPrefix + "DISABLE_PROJECT_SHARING"

	// LimitRpcClientUidEnvVar
	// WB_LIMIT_RPC_CLIENT_UID restricts RPC clients to the given uid. One-shot.
	LimitRpcClientUidEnvVar = envVarPrefix + "LIMIT_RPC_CLIENT_UID"

	// RVersionsPathEnvVar
	// WB_R_VERSIONS_PATH points at the r-versions manifest. One-shot.
	RVersionsPathEnvVar = envVarPrefix + "R_VERSIONS_PATH"

	// DefaultRVersionEnvVar
	// WB_DEFAULT_R_VERSION is the semantic version of the default R runtime. One-shot.
	DefaultRVersionEnvVar = envVarPrefix + "DEFAULT_R_VERSION"

	// DefaultRVersionHomeEnvVar
	// WB_DEFAULT_R_VERSION_HOME is the home directory of the default R runtime. One-shot.
	DefaultRVersionHomeEnvVar = envVarPrefix + "DEFAULT_R_VERSION_HOME"

	// RequiredUserGroupEnvVar
	// WB_REQUIRED_USER_GROUP restricts server sessions to members of the given
	// group. One-shot, server mode only.
	RequiredUserGroupEnvVar = envVarPrefix + "REQUIRED_USER_GROUP"

	// MinimumUserIdEnvVar
	// WB_MINIMUM_USER_ID is the lowest uid allowed to authenticate.
	// 	Default: 100
	// One-shot, server mode only.
	MinimumUserIdEnvVar = envVarPrefix + "MINIMUM_USER_ID"

	// SigningKeyEnvVar
	// WB_SIGNING_KEY is the key used to verify incoming RPC requests in
	// standalone mode. One-shot.
	SigningKeyEnvVar = envVarPrefix + "SIGNING_KEY"

	// SessionRsaPublicKeyEnvVar and SessionRsaPrivateKeyEnvVar
	// WB_SESSION_RSA_PUBLIC_KEY / WB_SESSION_RSA_PRIVATE_KEY are published by
	// the resolver for child-process consumption when signature verification
	// is enabled. Never persisted to disk.
	SessionRsaPublicKeyEnvVar  = envVarPrefix + "SESSION_RSA_PUBLIC_KEY"
	SessionRsaPrivateKeyEnvVar = envVarPrefix + "SESSION_RSA_PRIVATE_KEY"

	// LogLevelEnvVar
	// WB_LOG_LEVEL sets the log level for the session host.
	// 	Default: info
	//  Possible values: debug info warn error
	LogLevelEnvVar = envVarPrefix + "LOG_LEVEL"
)

// Conventional variables owned by R or the host platform, read but never
// renamed. R_USER takes precedence over HOME when resolving the user home.
const (
	RUserEnvVar = "R_USER"
	HomeEnvVar  = "HOME"
)
