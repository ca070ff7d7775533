// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAliasFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string][]string
		errMsg  string
	}{
		{
			name:    "reads overrides",
			content: "aliases:\n  company: [employer, org]\n  status:\n    - stage\n",
			want: map[string][]string{
				"company": {"employer", "org"},
				"status":  {"stage"},
			},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "malformed yaml",
			content: "aliases: [company",
			errMsg:  "parsing alias file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "aliases.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := ReadAliasFile(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadAliasFileMissing(t *testing.T) {
	_, err := ReadAliasFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading alias file")
}

func TestWriteAliasFileRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAliasFile(&buf, DefaultAliases()))

	out := buf.String()
	assert.Contains(t, out, "aliases:\n  company: [company, company name]\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("company:")), bytes.Index(buf.Bytes(), []byte("job_url:")))

	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := ReadAliasFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string(DefaultAliases()), got)
}
