package app

import (
	"errors"
	"slices"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

const (
	CmdMigrate = "migrate"
	CmdAddUser = "adduser"
	CmdLogin   = "login"
	CmdRevoke  = "revoke"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage: authctl [flags] migrate | adduser <name> <email> | login [-verify] <email> | revoke <refresh-token>")
)

// valueFlags lists every flag that takes a value, so its value is not
// mistaken for a positional argument.
var valueFlags = []string{"-c", "-config", "-d", "-e", "-s", "-r", "-t", "-u", "-n"}

// Command is a parsed authctl invocation.
type Command struct {
	Name   string
	Args   []string
	Verify bool
}

// ParseCommand extracts the subcommand and its positional arguments from args
// (normally os.Args[1:]). Config flags may appear anywhere.
func ParseCommand(args []string) (Command, error) {
	pos := flagx.Positional(args, valueFlags)
	if len(pos) == 0 {
		return Command{}, ErrUsage
	}

	cmd := Command{Name: pos[0], Args: pos[1:], Verify: slices.Contains(args, "-verify")}

	want := map[string]int{CmdMigrate: 0, CmdAddUser: 2, CmdLogin: 1, CmdRevoke: 1}
	n, ok := want[cmd.Name]
	if !ok {
		return Command{}, ErrUnknownCommand
	}
	if len(cmd.Args) != n {
		return Command{}, ErrUsage
	}

	return cmd, nil
}
