package gitstate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// runGit runs a read-only git query in the handle's working tree under the
// handle's timeout and returns its standard output.
func (it *GitStateRepository) runGit(
	ctx context.Context,
	handle entities.RepositoryHandle,
	args ...string,
) (string, error) {
	op := "git " + args[0]

	gitPath, err := exec.LookPath(it.gitBinary)
	if err != nil {
		return "", &entities.RepositoryError{
			Op:  op,
			Err: fmt.Errorf("git executable %q not available: %w", it.gitBinary, err),
		}
	}

	queryCtx, cancel := handle.QueryContext(ctx)
	defer cancel()

	cmd := exec.CommandContext(queryCtx, gitPath, args...)
	cmd.Dir = handle.Root
	// GIT_OPTIONAL_LOCKS=0 keeps `git status` from refreshing the index on disk
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running %s %s in %s", gitPath, strings.Join(args, " "), handle.Root)

	if runErr := cmd.Run(); runErr != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			runErr = fmt.Errorf("%w: %s", runErr, msg)
		}
		return "", queryError(queryCtx, handle, op, runErr)
	}

	return stdout.String(), nil
}
