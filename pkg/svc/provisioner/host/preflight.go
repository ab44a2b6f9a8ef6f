package host

import (
	"fmt"
	"os"
)

// preflight verifies the run's preconditions before any mutation: the caller
// must be root-equivalent and all three project trees must exist under the
// source path.
func (p *Provisioner) preflight() stepResult {
	if p.euid() != 0 {
		return failed(ErrRootRequired)
	}

	for _, proj := range projects {
		dir := p.sourceDir(proj.name)

		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return failed(fmt.Errorf("%w: %s (%s)", ErrProjectDirMissing, dir, proj.role))
		}
	}

	return succeeded()
}
