// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"workbench.dev/x/session/pkg/utils"
)

const programIdentityPrefix = "wbsession-"

const verifyInstallationDirName = "workbench-verify-installation"

// Resolve turns raw startup inputs into the immutable session configuration.
// It runs exactly once per process, synchronously, before any worker exists.
//
// The returned error is always a *StartupError; everything non-fatal comes
// back as a warning on the Result together with the environment mutations
// the caller must apply. Resolution is strictly ordered: the install root is
// determined before any path is resolved, the home path before any default
// directory is created, and the scope before the initial project path is
// derived. Each raw value is consumed exactly once.
func Resolve(inputs RawInputs) (*ResolvedConfiguration, *Result, error) {
	r := &resolver{
		env:    inputs.Environ.clone(),
		hints:  inputs.Hints,
		result: &Result{},
	}

	cfg, err := r.resolve(inputs)
	if err != nil {
		return nil, r.result, err
	}
	return cfg, r.result, nil
}

type resolver struct {
	env    Environ
	hints  PlatformHints
	result *Result
}

// consume reads a one-shot environment variable and queues its removal. The
// variable is also removed from the working snapshot so no later step can
// observe it.
func (r *resolver) consume(name string) string {
	value, ok := r.env[name]
	if !ok {
		return ""
	}
	delete(r.env, name)
	r.result.EnvMutations = append(r.result.EnvMutations, EnvMutation{Name: name, Unset: true})
	return value
}

// setEnv queues an environment variable for child-process consumption and
// makes it visible to the remaining resolution steps.
func (r *resolver) setEnv(name, value string) {
	r.env[name] = value
	r.result.EnvMutations = append(r.result.EnvMutations, EnvMutation{Name: name, Value: value})
}

func (r *resolver) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.result.Warnings = append(r.result.Warnings, msg)
	slog.Warn(msg)
}

func (r *resolver) resolve(inputs RawInputs) (*ResolvedConfiguration, error) {
	goos := r.hints.os()

	// secrets come off the environment before anything else reads it, so
	// they cannot leak into logging or a child spawned by a later step
	sharedSecret := r.consume(SharedSecretEnvVar)
	monitorSecret := r.consume(MonitorSharedSecretEnvVar)

	layout, err := r.findInstallRoot(inputs, goos)
	if err != nil {
		return nil, err
	}

	opts := inputs.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	mode, err := ParseProgramMode(opts.ProgramMode)
	if err != nil {
		slog.Error(err.Error())
		return nil, newStartupError(InvalidProgramMode, err)
	}

	cfg := &ResolvedConfiguration{
		InstallRoot:         layout.InstallRoot,
		Layout:              layout.Kind,
		ProgramMode:         mode,
		SharedSecret:        sharedSecret,
		MonitorSharedSecret: monitorSecret,
		ResourcePaths:       map[string]string{},
	}

	// scope comes straight from the raw options; validity is unknown until
	// the home and scratch paths exist
	cfg.Scope = ScopeFromProjectID(opts.ProjectID, opts.ScopeID)

	if inputs.Overlay != nil {
		if err := inputs.Overlay.PreResolve(opts); err != nil {
			slog.Error(err.Error())
			return nil, newStartupError(OverlayRejected, fmt.Errorf("%w: %w", ErrOverlayValidation, err))
		}
	}

	cfg.UserIdentity = opts.UserIdentity
	if cfg.UserIdentity == "" {
		cfg.UserIdentity = firstNonEmpty(r.env.Get("USER"), r.env.Get("USERNAME"))
	}
	cfg.ProgramIdentity = programIdentityPrefix + cfg.UserIdentity

	// verification runs in server mode get a throwaway home so they never
	// touch the real user's home drive; launcher-managed verification runs
	// as a real user and keeps the normal setup
	if opts.VerifyInstallation && !opts.LauncherSession && mode == Server {
		tempDir := inputs.TempDir
		if tempDir == "" {
			tempDir = os.TempDir()
		}
		verifyHome := filepath.Join(tempDir, verifyInstallationDirName)
		if err := utils.EnsureDirs(verifyHome); err != nil {
			slog.Error("unable to create verification home directory", "dir", verifyHome, "err", err)
			return nil, newStartupError(VerifyHomeFailed, fmt.Errorf("%w: %w", ErrVerifyHomeUnavailable, err))
		}
		cfg.VerifyInstallationHomeDir = verifyHome
		r.setEnv(RUserEnvVar, verifyHome)
	}

	cfg.UserHomePath = userHomePath(r.env, RUserEnvVar, HomeEnvVar)
	cfg.UserScratchPath = userDataDir(r.env, goos, cfg.UserHomePath)

	if err := migrateLegacyState(cfg.UserHomePath, cfg.UserScratchPath, mode); err != nil {
		r.warnf("state migration failed: %v", err)
	}

	// reflect R_USER back into HOME for standalone sessions
	if opts.Standalone {
		r.setEnv(HomeEnvVar, cfg.UserHomePath)
	}

	cfg.ProjectSharingEnabled = r.env.Get(DisableProjectSharingEnvVar) == ""

	if !cfg.Scope.Empty() {
		cfg.ScopeState, cfg.InitialProjectPath = validateSessionScope(
			cfg.Scope,
			cfg.UserHomePath,
			cfg.UserScratchPath,
			opts.SharedStoragePath,
			cfg.ProjectSharingEnabled)
	} else {
		cfg.ScopeState = ScopeEmpty
		cfg.InitialProjectPath = r.consume(InitialProjectEnvVar)
	}

	cfg.DefaultWorkingDir = r.ensureDefaultDirectory(opts.DefaultWorkingDir, cfg.UserHomePath)
	cfg.DefaultProjectDir = r.ensureDefaultDirectory(opts.DefaultProjectDir, cfg.UserHomePath)

	// desktop sessions never time out
	cfg.TimeoutMinutes = opts.TimeoutMinutes
	if mode == Desktop {
		cfg.TimeoutMinutes = 0
	}

	saveAction, ok := ParseSaveAction(opts.SaveActionDefault)
	if !ok {
		r.warnf("invalid value %q for save-action-default. Valid values are yes, no, and ask.", opts.SaveActionDefault)
	}
	cfg.SaveActionDefault = saveAction

	r.resolveResourcePaths(cfg, layout, opts, mode, goos)

	cfg.ShowUserHomePage = r.consume(UserHomePageEnvVar) == "1"
	cfg.MultiSession = mode == Desktop || r.env.Get(MultiSessionEnvVar) == "1"
	cfg.InitialWorkingDir = r.consume(InitialWorkingDirEnvVar)
	cfg.InitialEnvironmentFile = r.consume(InitialEnvironmentEnvVar)

	cfg.LimitRpcClientUid = -1
	if limitUid := r.consume(LimitRpcClientUidEnvVar); limitUid != "" {
		parsed, err := strconv.Atoi(limitUid)
		if err != nil {
			r.warnf("invalid value %q for %s", limitUid, LimitRpcClientUidEnvVar)
			parsed = -1
		}
		cfg.LimitRpcClientUid = parsed
	}

	cfg.RVersionsPath = r.consume(RVersionsPathEnvVar)
	cfg.DefaultRVersion = r.consume(DefaultRVersionEnvVar)
	if cfg.DefaultRVersion != "" {
		if _, err := semver.NewVersion(cfg.DefaultRVersion); err != nil {
			r.warnf("invalid value %q for %s: %v", cfg.DefaultRVersion, DefaultRVersionEnvVar, err)
			cfg.DefaultRVersion = ""
		}
	}
	cfg.DefaultRVersionHome = r.consume(DefaultRVersionHomeEnvVar)

	if mode == Server {
		cfg.RequiredUserGroup = r.consume(RequiredUserGroupEnvVar)
		cfg.MinimumUserId = 100
		if minUid := r.consume(MinimumUserIdEnvVar); minUid != "" {
			parsed, err := strconv.Atoi(minUid)
			if err != nil {
				r.warnf("invalid value %q for %s", minUid, MinimumUserIdEnvVar)
				parsed = 100
			}
			cfg.MinimumUserId = parsed
		}
	}

	cfg.SigningKey = r.consume(SigningKeyEnvVar)

	if opts.VerifySignatures {
		publicKey, privateKey, err := GenerateRsaKeyPair()
		if err != nil {
			r.warnf("unable to generate session keypair: %v", err)
		} else {
			cfg.SessionRsaPublicKey = publicKey
			cfg.SessionRsaPrivateKey = privateKey
			r.setEnv(SessionRsaPublicKeyEnvVar, publicKey)
			r.setEnv(SessionRsaPrivateKeyEnvVar, privateKey)
		}
	}

	reposFile := utils.ResolvePath(cfg.InstallRoot, opts.CRANReposFile)
	encoded, err := ParseReposConfig(reposFile)
	if err != nil {
		r.warnf("%v", err)
	}
	cfg.CRANReposEncoded = encoded

	if inputs.Overlay != nil {
		if err := inputs.Overlay.Validate(cfg); err != nil {
			slog.Error(err.Error())
			return nil, newStartupError(OverlayRejected, fmt.Errorf("%w: %w", ErrOverlayValidation, err))
		}
	}

	return cfg, nil
}

// findInstallRoot probes for the install root: the build-layout-specific
// location first, then the default location relative to the executable, then
// the supporting-files override. No hit is fatal.
func (r *resolver) findInstallRoot(inputs RawInputs, goos string) (PathLayoutPolicy, error) {
	exeDir := filepath.Dir(inputs.ExecutablePath)
	if inputs.ExecutablePath == "" {
		var err error
		exeDir, err = utils.ExecutableDir()
		if err != nil {
			exeDir = ""
		}
	}

	if exeDir != "" {
		condaRoot := filepath.Clean(filepath.Join(exeDir, condaShareDir))
		if exists, _ := utils.DirExists(condaRoot); exists {
			return detectLayout(condaRoot, goos, true), nil
		}

		defaultRoot := filepath.Dir(exeDir)
		if exists, _ := utils.DirExists(defaultRoot); exists {
			return detectLayout(defaultRoot, goos, false), nil
		}
	}

	if override := r.env.Get(SupportingFilePathEnvVar); override != "" {
		if exists, _ := utils.DirExists(override); exists {
			return detectLayout(override, goos, false), nil
		}
	}

	slog.Error("unable to determine install path", "executable", inputs.ExecutablePath)
	return PathLayoutPolicy{}, newStartupError(InstallPathNotFound, ErrInstallPathNotFound)
}

// ensureDefaultDirectory creates an optional default directory unless it is
// the "~" sentinel. Creation failure degrades back to the sentinel.
func (r *resolver) ensureDefaultDirectory(dir, homePath string) string {
	if dir == "~" || dir == "" {
		return "~"
	}
	resolved := utils.ResolveAliasedPath(dir, homePath)
	if err := utils.EnsureDirs(resolved); err != nil {
		r.warnf("unable to create directory %s: %v", resolved, err)
		return "~"
	}
	return dir
}

func (r *resolver) resolveResourcePaths(cfg *ResolvedConfiguration, layout PathLayoutPolicy, opts *Options, mode ProgramMode, goos string) {
	for _, spec := range resourceSpecs {
		if spec.windowsOnly && goos != "windows" {
			continue
		}
		raw := opts.Resources[spec.name]
		if spec.name == ResWinpty {
			cfg.ResourcePaths[spec.name] = layout.resolveWinpty(raw, r.hints.arch())
			continue
		}
		cfg.ResourcePaths[spec.name] = layout.resolveResource(spec, raw, mode)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
