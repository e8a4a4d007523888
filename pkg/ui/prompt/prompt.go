// Package prompt asks the user to settle import conflicts on the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// maxListed is how many conflicting files are listed before summarizing
const maxListed = 3

// Console reads answers from in and writes questions to out
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console prompt
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) readLine(text string) (string, error) {
	fmt.Fprint(c.out, text)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read user input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question until it gets a valid answer. An empty
// answer picks def.
func (c *Console) Confirm(text string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	for {
		answer, err := c.readLine(fmt.Sprintf("%s %s: ", text, marker))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			return def, nil
		default:
			fmt.Fprintln(c.out, "Error: invalid input")
		}
	}
}

// Ask reads a line of text. An empty answer picks def; with no default the
// question repeats.
func (c *Console) Ask(text, def string) (string, error) {
	prompt := text + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", text, def)
	}
	for {
		answer, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, nil
		}
		if def != "" {
			return def, nil
		}
	}
}

// Resolver is a types.ConflictResolver that asks on the console
type Resolver struct {
	console *Console
	shown   string
}

// NewResolver creates a console conflict resolver
func NewResolver(in io.Reader, out io.Writer) *Resolver {
	return &Resolver{console: NewConsole(in, out)}
}

// describe prints the conflict once per livery
func (r *Resolver) describe(req types.ConflictRequest) {
	id := req.Archive + "\x00" + req.Livery.Key()
	if r.shown == id {
		return
	}
	r.shown = id

	out := r.console.out
	fmt.Fprintf(out, "\nLivery %s from %s would overwrite installed files:\n", req.Livery.Key(), req.Archive)
	if len(req.Differing) <= maxListed {
		fmt.Fprintf(out, "    └── %s\n", strings.Join(req.Differing, ", "))
	} else {
		fmt.Fprintf(out, "    └── %s and %d more\n", strings.Join(req.Differing[:maxListed], ", "), len(req.Differing)-maxListed)
	}
}

// ResolveDescriptor offers override, then rename, then skip
func (r *Resolver) ResolveDescriptor(req types.ConflictRequest) (types.DescriptorDecision, error) {
	r.describe(req)
	name := req.Livery.Descriptor.Name

	override, err := r.console.Confirm(fmt.Sprintf("Override descriptor %s?", name), false)
	if err != nil {
		return types.DescriptorDecision{}, err
	}
	if override {
		return types.DescriptorDecision{Action: types.DescriptorOverride}, nil
	}

	rename, err := r.console.Confirm("Install it under a new name instead?", true)
	if err != nil {
		return types.DescriptorDecision{}, err
	}
	if !rename {
		return types.DescriptorDecision{Action: types.DescriptorSkip}, nil
	}

	stem := strings.TrimSuffix(name, path.Ext(name))
	newName, err := r.console.Ask("New descriptor name", stem+"_2")
	if err != nil {
		return types.DescriptorDecision{}, err
	}
	return types.DescriptorDecision{Action: types.DescriptorRename, NewName: newName}, nil
}

// ResolveAssets asks whether to override the asset folder
func (r *Resolver) ResolveAssets(req types.ConflictRequest) (types.AssetsAction, error) {
	r.describe(req)
	override, err := r.console.Confirm(fmt.Sprintf("Override the files in Liveries/%s?", req.Livery.Folder), false)
	if err != nil {
		return types.AssetsSkip, err
	}
	if override {
		return types.AssetsOverride, nil
	}
	return types.AssetsSkip, nil
}
