// Package deps checks for the external binaries optional features rely on.
package deps

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrMissing reports a required binary that is not on PATH.
var ErrMissing = errors.New("required binary not found")

// Requirement defines an external binary a feature relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	// Path is the resolved executable when Available.
	Path   string
	Detail string
}

// Graphviz is needed to render relation graphs to images.
func Graphviz() Requirement {
	return Requirement{
		Name:        "Graphviz",
		Command:     "dot",
		Description: "renders relation graphs to png, svg or pdf",
		Optional:    true,
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, check(req))
	}
	return results
}

// Resolve returns the executable path for req or an error wrapping ErrMissing.
func Resolve(req Requirement) (string, error) {
	status := check(req)
	if !status.Available {
		return "", fmt.Errorf("%w: %s (%s): %s", ErrMissing, req.Name, status.Detail, req.Description)
	}
	return status.Path, nil
}

func check(req Requirement) Status {
	cmd := strings.TrimSpace(req.Command)
	status := Status{
		Name:        req.Name,
		Command:     cmd,
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if cmd == "" {
		status.Detail = "command not configured"
		return status
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", cmd)
		return status
	}
	status.Available = true
	status.Path = path
	return status
}
