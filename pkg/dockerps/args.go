package dockerps

import "strings"

// Variant selects the listing command
type Variant int

const (
	// Plain lists with `docker ps`
	Plain Variant = iota
	// Compose lists with `docker compose ps`
	Compose
)

// Runtime is the container CLI both variants run
const Runtime = "docker"

// Format is the template passed to the listing command
const Format = "{{.Names}}\t{{.Ports}}\t{{.Status}}"

func (v Variant) String() string {
	if v == Compose {
		return "compose"
	}
	return "plain"
}

// Args returns the runtime arguments for the variant, with extra appended
// unchanged
func (v Variant) Args(extra []string) []string {
	var args []string
	if v == Compose {
		args = []string{"compose", "ps"}
	} else {
		args = []string{"ps"}
	}
	args = append(args, "--format", Format)
	return append(args, extra...)
}

// Invocation is a parsed dockerps command line
type Invocation struct {
	Variant Variant
	Help    bool
	// Extra is forwarded verbatim to the listing command
	Extra []string
}

// CommandLine describes the listing command for logs
func (i Invocation) CommandLine() string {
	return Runtime + " " + strings.Join(i.Variant.Args(i.Extra), " ")
}

// ParseArgs splits dockerps arguments. --compose selects the compose
// variant and -h/--help request usage; every other argument is kept in
// order for the listing command. "--" and everything after it are forwarded
// unchanged.
func ParseArgs(args []string) Invocation {
	inv := Invocation{Extra: []string{}}
	for i, arg := range args {
		switch arg {
		case "--compose":
			inv.Variant = Compose
		case "-h", "--help":
			inv.Help = true
		case "--":
			inv.Extra = append(inv.Extra, args[i:]...)
			return inv
		default:
			inv.Extra = append(inv.Extra, arg)
		}
	}
	return inv
}
