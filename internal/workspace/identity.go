package workspace

import (
	"os"
	"os/user"
)

// IdentityFunc reports the operating identity of the operator, if one can
// be detected. It is injected into the pipeline so tests can substitute a
// fixed identity.
type IdentityFunc func() (string, bool)

// OperatorName detects the current operator's name from the environment,
// preferring the git author identity over the OS account.
func OperatorName() (string, bool) {
	if name := os.Getenv("GIT_AUTHOR_NAME"); name != "" {
		return name, true
	}

	u, err := user.Current()
	if err != nil {
		return "", false
	}
	if u.Name != "" {
		return u.Name, true
	}
	if u.Username != "" {
		return u.Username, true
	}
	return "", false
}
