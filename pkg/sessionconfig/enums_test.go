// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgramMode(t *testing.T) {
	mode, err := ParseProgramMode("desktop")
	require.NoError(t, err)
	assert.Equal(t, Desktop, mode)

	mode, err = ParseProgramMode("server")
	require.NoError(t, err)
	assert.Equal(t, Server, mode)

	_, err = ParseProgramMode("kiosk")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProgramMode)
}

func TestParseSaveAction(t *testing.T) {
	tests := []struct {
		input  string
		want   SaveAction
		wantOk bool
	}{
		{input: "yes", want: SaveActionSave, wantOk: true},
		{input: "no", want: SaveActionNoSave, wantOk: true},
		{input: "ask", want: SaveActionAsk, wantOk: true},
		{input: "", want: SaveActionAsk, wantOk: true},
		{input: "maybe", want: SaveActionAsk, wantOk: false},
	}
	for _, tt := range tests {
		got, ok := ParseSaveAction(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.wantOk, ok, "input %q", tt.input)
	}
}
