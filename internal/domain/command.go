package domain

import "strings"

// Command is a parsed command line: a program and its arguments
type Command struct {
	Args    []string
	Program string
}

// ParseCommand splits a command line on whitespace.
// "ls -al" becomes Command{Program: "ls", Args: ["-al"]}.
// No shell quoting is interpreted.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Program: fields[0], Args: fields[1:]}, nil
}

// String joins the command back into a single line
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}
