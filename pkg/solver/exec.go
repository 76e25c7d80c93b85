package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/forester-bio/forester/pkg/errors"
	"github.com/forester-bio/forester/pkg/table"
)

// Command invokes an external PCSF solver binary. The request (edges,
// prizes, parameters) is written to the process's stdin as JSON and the
// solution is read from its stdout, also as JSON:
//
//	stdin:  {"edges": [...], "prizes": [...], "params": {...}}
//	stdout: {"vertices": [...], "edges": [...]}
//
// Stderr is captured and surfaced in the error on failure.
type Command struct {
	// Path is the solver executable.
	Path string

	// Args are extra arguments passed before the JSON exchange.
	Args []string

	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// NewCommand creates a subprocess solver for the given executable.
func NewCommand(path string, args ...string) *Command {
	return &Command{Path: path, Args: args}
}

type request struct {
	Edges  []Edge  `json:"edges"`
	Prizes []Prize `json:"prizes"`
	Params Params  `json:"params"`
}

type instance struct {
	cmd    *Command
	req    request
	prized bool
}

// NewInstance builds a solver instance from the adjacency table and
// parameter set. The network is converted once, up front, so a malformed
// table fails here rather than mid-solve.
func (c *Command) NewInstance(adjacency *table.Table, params Params) (Instance, error) {
	edges, err := EdgesFromTable(adjacency)
	if err != nil {
		return nil, err
	}
	return &instance{
		cmd: c,
		req: request{Edges: edges, Params: params},
	}, nil
}

// PreparePrizes injects the prize table into the pending request.
func (i *instance) PreparePrizes(prizes *table.Table) error {
	p, err := PrizesFromTable(prizes)
	if err != nil {
		return err
	}
	i.req.Prizes = p
	i.prized = true
	return nil
}

// Solve runs the solver subprocess and decodes the solution.
func (i *instance) Solve(ctx context.Context) (*Solution, error) {
	if !i.prized {
		return nil, errors.New(errors.ErrCodeInvalidInput, "prizes not prepared before solve")
	}

	payload, err := json.Marshal(i.req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode solver request")
	}

	i.logf("invoking solver %s with %d edges, %d prizes",
		i.cmd.Path, len(i.req.Edges), len(i.req.Prizes))

	cmd := exec.CommandContext(ctx, i.cmd.Path, i.cmd.Args...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Writer(&stderr)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, errors.Wrap(errors.ErrCodeSolverFailed, err, "solver %s: %s", i.cmd.Path, msg)
		}
		return nil, errors.Wrap(errors.ErrCodeSolverFailed, err, "solver %s", i.cmd.Path)
	}

	var sol Solution
	if err := json.Unmarshal(stdout.Bytes(), &sol); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSolverOutput, err, "decode solver output")
	}
	if err := sol.Validate(); err != nil {
		return nil, err
	}

	i.logf("solver returned %d vertices, %d edges", len(sol.Vertices), len(sol.Edges))
	return &sol, nil
}

func (i *instance) logf(format string, args ...any) {
	if i.cmd.Logger != nil {
		i.cmd.Logger.Debugf(format, args...)
	}
}
