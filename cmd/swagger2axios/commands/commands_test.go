package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/FreezeNow/swagger-to-axios/internal/testutil"
	"github.com/FreezeNow/swagger-to-axios/model"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// execute runs the root command with args and returns its stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGenerateFromURLFlag(t *testing.T) {
	spec := testutil.WriteTempFile(t, "user.yaml", testutil.UserServiceOAS2)
	out := t.TempDir()

	stdout, _, err := execute(t, "generate", "--url", spec, "--name", "user", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 1 files with 3 functions from 1 of 1 documents in "+out)

	data, err := os.ReadFile(filepath.Join(out, "user", "user.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "const host = '127.0.0.1:8848';")
	assert.Contains(t, string(data), "export function postUserLogin(data, options) {")
}

func TestGenerateFromConfigSkipsFailedDocuments(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteTempFile(t, "user.yaml", testutil.UserServiceOAS2)
	out := filepath.Join(dir, "apis")
	cfgPath := filepath.Join(dir, "swagger2axios.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`documents:
  - url: `+filepath.Join(dir, "missing.yaml")+`
    isLocalFile: true
    name: missing
  - url: `+good+`
    isLocalFile: true
    name: user
cliType: vite
typeScript: true
importAxiosPath: "@/utils/request"
outputFolder: `+out+`
`), 0o600))

	stdout, stderr, err := execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "skipped "+filepath.Join(dir, "missing.yaml"))
	assert.Contains(t, stdout, "from 1 of 2 documents")

	data, err := os.ReadFile(filepath.Join(out, "user", "user.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import request from '@/utils/request';")
	assert.NoDirExists(t, filepath.Join(out, "missing"))
}

func TestGenerateFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	spec := testutil.WriteTempFile(t, "pets.yaml", testutil.PetStoreOAS3)
	cfgPath := filepath.Join(dir, "swagger2axios.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("outputFolder: "+filepath.Join(dir, "ignored")+"\ncliType: VueCli\n"), 0o600))
	out := filepath.Join(dir, "out")

	_, _, err := execute(t, "generate", "-c", cfgPath, "-u", spec, "--name", "pets", "-o", out, "--cli-type", "Vite", "--ts", "--https")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "pets", "pet.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import.meta.env.VITE_APP_HOST")
	assert.Contains(t, string(data), "baseURL: `https://${host}`")
	assert.NoDirExists(t, filepath.Join(dir, "ignored"))
}

func TestGenerateDryRun(t *testing.T) {
	spec := testutil.WriteTempFile(t, "pets.yaml", testutil.PetStoreOAS3)
	out := filepath.Join(t.TempDir(), "apis")

	stdout, _, err := execute(t, "generate", "--url", spec, "--name", "pets", "--output", out, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pets/pet.js (3 functions)")
	assert.Contains(t, stdout, "pets/index.js (1 functions)")
	assert.Contains(t, stdout, "Would generate 4 files with 5 functions")
	assert.NoDirExists(t, out)
}

func TestGenerateErrors(t *testing.T) {
	spec := testutil.WriteTempFile(t, "pets.yaml", testutil.PetStoreOAS3)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	tests := []struct {
		name    string
		args    []string
		wantErr string
		config  bool
	}{
		{"no documents", []string{"generate"}, "no documents", false},
		{"all failed", []string{"generate", "--url", missing}, "all 1 documents failed", false},
		{"bad cli type", []string{"generate", "--url", spec, "--cli-type", "webpack"}, "must be Vite or VueCli", true},
		{"bad concurrency", []string{"generate", "--url", spec, "--concurrency", "0"}, "concurrency", true},
		{"bad url type", []string{"generate", "--url", spec, "--url-type", "xml"}, "urlType", true},
		{"name with many urls", []string{"generate", "--url", spec, "--url", spec, "--name", "x"}, "--name", false},
		{"missing config", []string{"generate", "--config", missing}, "config", false},
		{"positional args", []string{"generate", spec}, "unknown command", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append(tt.args, "--output", t.TempDir())...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.config, errors.Is(err, oaserrors.ErrConfig))
		})
	}
}

func TestInspect(t *testing.T) {
	spec := testutil.WriteTempFile(t, "pets.yaml", testutil.PetStoreOAS3)

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := execute(t, "inspect", spec, "--name", "pets")
		require.NoError(t, err)
		var folder model.Folder
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &folder))
		assert.Equal(t, "pets", folder.Name)
		assert.Equal(t, model.CLITypeVueCli, folder.CLIType)
		assert.Equal(t, "/api/v1", folder.BasePath)
		require.Len(t, folder.Tags, 4)
		assert.Equal(t, "pet", folder.Tags[0].Name)
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "inspect", "--format", "json", "--cli-type", "vite", spec)
		require.NoError(t, err)
		var folder model.Folder
		require.NoError(t, json.Unmarshal([]byte(stdout), &folder))
		assert.Equal(t, model.CLITypeVite, folder.CLIType)
		assert.True(t, strings.HasPrefix(folder.Name, "api_"))
		require.NotNil(t, folder.Tags[3].Operations[0].ResponseType)
		assert.Equal(t, "{ 'ok': boolean }", *folder.Tags[3].Operations[0].ResponseType)
	})
}

func TestInspectErrors(t *testing.T) {
	spec := testutil.WriteTempFile(t, "pets.yaml", testutil.PetStoreOAS3)
	bad := testutil.WriteTempFile(t, "bad.yaml", testutil.InvalidYAML)

	tests := []struct {
		name string
		args []string
		kind oaserrors.Kind
	}{
		{"bad format", []string{"inspect", "--format", "xml", spec}, oaserrors.KindUnknown},
		{"bad cli type", []string{"inspect", "--cli-type", "webpack", spec}, oaserrors.KindConfig},
		{"malformed", []string{"inspect", bad}, oaserrors.KindMalformedDocument},
		{"missing", []string{"inspect", filepath.Join(t.TempDir(), "nope.yaml")}, oaserrors.KindSourceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.kind, oaserrors.KindOf(err))
		})
	}

	_, _, err := execute(t, "inspect")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "swagger2axios vdev\n", stdout)

	stdout, _, err = execute(t, "version", "--build")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Commit: unknown")
	assert.Contains(t, stdout, "Go Version: go")
}

func TestVerboseLogsToStderr(t *testing.T) {
	spec := testutil.WriteTempFile(t, "pets.yaml", testutil.PetStoreOAS3)
	_, stderr, err := execute(t, "--verbose", "inspect", spec)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
}
