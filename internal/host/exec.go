package host

import (
	"context"
	"os/exec"
	"path/filepath"
)

// ExecScript runs a companion script directly via the operating system,
// with the script's own directory as working directory. It satisfies the
// signature hostmem accepts as a script runner.
func ExecScript(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = filepath.Dir(path)
	return cmd.Run()
}
