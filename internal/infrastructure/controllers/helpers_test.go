//go:build unit

package controllers_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// newTestCommand mirrors the global flags of the gitassist root command and
// parses args onto a command carrying the controller's own flags.
func newTestCommand(t *testing.T, controller entities.Controller, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().String("repo", ".", "")
	cmd.Flags().String("format", "human", "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().Duration("timeout", entities.DefaultQueryTimeout, "")
	cmd.Flags().Bool("verbose", false, "")
	controller.AddFlags(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &out
}

// fixedTimeout is a value distinct from every default.
const fixedTimeout = 7 * time.Second
