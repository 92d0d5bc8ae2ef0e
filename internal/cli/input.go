package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/rookflow/problem"
)

// readProblem loads a problem from file, from the positional token args, or
// from stdin, in that order of preference. Files ending in .toml use the TOML
// format; everything else is a token stream.
func readProblem(logger *log.Logger, stdin io.Reader, file string, args []string) (problem.Problem, error) {
	var (
		p   problem.Problem
		err error
	)
	switch {
	case file != "":
		p, err = readProblemFile(file)
	case len(args) > 0:
		p, err = problem.ParseString(strings.Join(args, " "))
	default:
		logger.Debug("reading problem from stdin")
		p, err = problem.Parse(stdin)
	}
	if err != nil {
		return problem.Problem{}, err
	}

	if p.CountMismatch() {
		logger.Warn("rectangle count mismatch", "declared", p.Declared, "found", len(p.Rectangles))
	}
	if err := p.Validate(); err != nil {
		return problem.Problem{}, err
	}
	logger.Debug("problem loaded", "side", p.Side, "rectangles", len(p.Rectangles))
	return p, nil
}

func readProblemFile(path string) (problem.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("open problem: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return problem.LoadTOML(f)
	}
	return problem.Parse(f)
}
