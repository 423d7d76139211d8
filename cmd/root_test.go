package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"vite-setup/internal/config"
	"vite-setup/internal/installer"
	"vite-setup/internal/logger"
	"vite-setup/internal/runner"
)

const projectDir = "/home/dev/portfolio"

func setupCommand(t *testing.T, args ...string) (afero.Fs, *runner.MockRunner, error) {
	t.Helper()

	var out bytes.Buffer
	prev := logger.SetOutput(&out)
	t.Cleanup(func() {
		logger.SetOutput(prev)
		logger.Init(false)
	})

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(projectDir, 0755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(projectDir, "package.json"), []byte(`{"name":"portfolio"}`), 0644))

	r := runner.NewMockRunner()
	getwd := func() (string, error) { return projectDir, nil }

	rootCmd := NewRootCommand(fs, r, getwd)
	rootCmd.SetArgs(append([]string{}, args...)) // nil would make cobra fall back to os.Args
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	return fs, r, rootCmd.ExecuteContext(context.Background())
}

func TestRootCommand_NoArgsRunsSetup(t *testing.T) {
	fs, r, err := setupCommand(t)
	require.NoError(t, err)

	assert.Equal(t, []string{"npm install"}, r.CommandLines())

	vite, err := afero.ReadFile(fs, filepath.Join(projectDir, "vite.config.js"))
	require.NoError(t, err)
	assert.Contains(t, string(vite), `base: "/portfolio/",`)
}

func TestRootCommand_InitAlias(t *testing.T) {
	_, r, err := setupCommand(t, "init")
	require.NoError(t, err)
	assert.Equal(t, []string{"npm install"}, r.CommandLines())
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	_, r, err := setupCommand(t, "extra")
	require.Error(t, err)
	assert.Empty(t, r.Calls())
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	var out bytes.Buffer
	prev := logger.SetOutput(&out)
	t.Cleanup(func() { logger.SetOutput(prev) })

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(projectDir, "package.json"), []byte(`{}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/etc/vite-setup.yaml", []byte("package_manager: yarn\nhomepage: https://pages.example/{{ .Name }}\n"), 0644))

	r := runner.NewMockRunner()
	rootCmd := NewRootCommand(fs, r, func() (string, error) { return projectDir, nil })
	rootCmd.SetArgs([]string{"--config", "/etc/vite-setup.yaml", "--debug"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, []string{"yarn install"}, r.CommandLines())

	pkg, err := afero.ReadFile(fs, filepath.Join(projectDir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "https://pages.example/portfolio", gjson.GetBytes(pkg, "homepage").String())
	assert.Contains(t, out.String(), "[DEBUG]")
}

func TestRootCommand_MissingConfigFlagFile(t *testing.T) {
	_, r, err := setupCommand(t, "-c", "/nowhere.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Empty(t, r.Calls())
}

func TestRootCommand_GetwdFailure(t *testing.T) {
	wdErr := errors.New("getwd: no such file or directory")
	rootCmd := NewRootCommand(afero.NewMemMapFs(), runner.NewMockRunner(), func() (string, error) { return "", wdErr })
	rootCmd.SetArgs([]string{})

	assert.ErrorIs(t, rootCmd.Execute(), wdErr)
}

func TestRootCommand_RootDirectoryHasNoName(t *testing.T) {
	rootCmd := NewRootCommand(afero.NewMemMapFs(), runner.NewMockRunner(), func() (string, error) { return "/", nil })
	rootCmd.SetArgs([]string{})

	assert.ErrorIs(t, rootCmd.Execute(), config.ErrNoProjectName)
}

// TestHelperExit is the child process for TestExitCode; it exits with status 7.
func TestHelperExit(t *testing.T) {
	if os.Getenv("VITE_SETUP_HELPER_EXIT") != "1" {
		return
	}
	os.Exit(7)
}

func TestExitCode(t *testing.T) {
	t.Setenv("VITE_SETUP_HELPER_EXIT", "1")
	childErr := exec.Command(os.Args[0], "-test.run=TestHelperExit").Run()
	require.Error(t, childErr)

	wrapped := &installer.StepError{
		Step: installer.StepInstall,
		Err:  fmt.Errorf("command %q failed: %w", "npm install", childErr),
	}

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain failure")))
	assert.Equal(t, 7, ExitCode(wrapped))
}
