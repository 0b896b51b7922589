package rdcli_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/gordian-engine/rdgen/internal/rdcli"
	"github.com/stretchr/testify/require"
)

// TestExitf_ExitsWithCode1 runs itself in a subprocess,
// because os.Exit cannot be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		rdcli.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode())
	require.True(t, strings.Contains(string(out), "fatal: something broke"), "output: %q", out)
}
