package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-reporter/internal/app"
	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/testutil"
)

var testNow = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

// testEnv bundles a container built on mocks with the mocks themselves.
type testEnv struct {
	container *app.Container
	tracker   *testutil.MockTracker
	images    *testutil.MockImageStore
	loader    *testutil.MockConfigLoader
	manager   *testutil.MockConfigManager
}

func newTestEnv(t *testing.T, issues ...domain.RemoteIssue) *testEnv {
	t.Helper()
	env := &testEnv{
		tracker: testutil.NewMockTracker(issues...),
		images:  testutil.NewMockImageStore(),
		loader:  testutil.NewMockConfigLoader(),
		manager: testutil.NewMockConfigManager(),
	}
	env.loader.Config.Reporter.Username = "alice"
	env.loader.Config.Reporter.ClientVersion = "v1.2.0"
	env.container = app.NewWithDeps(
		app.Config{ProjectDir: "/test/project"},
		env.tracker,
		env.images,
		env.loader,
		&testutil.MockClock{NowTime: testNow},
		&testutil.MockLogger{},
	)
	env.container.ConfigManager = env.manager
	return env
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
