// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

type ProgramMode int

const (
	Desktop ProgramMode = iota
	Server
)

func ParseProgramMode(s string) (ProgramMode, error) {
	switch s {
	case "desktop":
		return Desktop, nil
	case "server":
		return Server, nil
	default:
		return 0, fmt.Errorf("%w: %q. must be one of 'desktop', 'server'", ErrInvalidProgramMode, s)
	}
}

func (m ProgramMode) String() string {
	switch m {
	case Desktop:
		return "desktop"
	case Server:
		return "server"
	default:
		return "Unknown"
	}
}

func (m *ProgramMode) UnmarshalYAML(data []byte) error {
	var unmarshalled string
	if err := yaml.Unmarshal(data, &unmarshalled); err != nil {
		return fmt.Errorf("failed to unmarshal program mode: %w", err)
	}
	parsed, err := ParseProgramMode(unmarshalled)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

func (m *ProgramMode) MarshalYAML() ([]byte, error) {
	s := m.String()
	if s == "Unknown" {
		return nil, fmt.Errorf("invalid program mode enum value %d", int(*m))
	}
	return []byte(s), nil
}

var _ yaml.BytesUnmarshaler = (*ProgramMode)(nil)
var _ yaml.BytesMarshaler = (*ProgramMode)(nil)

// SaveAction is the default disposition of unsaved workspace data at session end.
type SaveAction int

const (
	SaveActionAsk SaveAction = iota
	SaveActionSave
	SaveActionNoSave
)

// ParseSaveAction maps the free-text option to a SaveAction. Empty input means
// Ask. Any unrecognized literal also falls back to Ask, with ok reporting false
// so the caller can record a warning.
func ParseSaveAction(s string) (action SaveAction, ok bool) {
	switch s {
	case "yes":
		return SaveActionSave, true
	case "no":
		return SaveActionNoSave, true
	case "ask", "":
		return SaveActionAsk, true
	default:
		return SaveActionAsk, false
	}
}

func (a SaveAction) String() string {
	switch a {
	case SaveActionSave:
		return "yes"
	case SaveActionNoSave:
		return "no"
	default:
		return "ask"
	}
}

func (a *SaveAction) MarshalYAML() ([]byte, error) {
	return []byte(a.String()), nil
}

var _ yaml.BytesMarshaler = (*SaveAction)(nil)

// ScopeState records the validity of the session scope once home and scratch
// paths are known.
type ScopeState int

const (
	ScopeEmpty ScopeState = iota
	ScopeValid
	ScopeInvalidProject
	ScopeInvalidPath
	ScopeMissingProject
)

func (s ScopeState) String() string {
	switch s {
	case ScopeEmpty:
		return "empty"
	case ScopeValid:
		return "valid"
	case ScopeInvalidProject:
		return "invalid-project"
	case ScopeInvalidPath:
		return "invalid-path"
	case ScopeMissingProject:
		return "missing-project"
	default:
		return "Unknown"
	}
}

func (s *ScopeState) MarshalYAML() ([]byte, error) {
	str := s.String()
	if str == "Unknown" {
		return nil, fmt.Errorf("invalid scope state enum value %d", int(*s))
	}
	return []byte(str), nil
}

var _ yaml.BytesMarshaler = (*ScopeState)(nil)
