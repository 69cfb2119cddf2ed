package facts

// Field names a gathered fact.
type Field string

const (
	FieldUsername     Field = "username"
	FieldHostname     Field = "hostname"
	FieldDistro       Field = "distro"
	FieldHost         Field = "host"
	FieldKernel       Field = "kernel"
	FieldUptime       Field = "uptime"
	FieldPackages     Field = "packages"
	FieldShell        Field = "shell"
	FieldShellVersion Field = "shell version"
	FieldTerminal     Field = "terminal"
	FieldMotherboard  Field = "motherboard"
	FieldCPU          Field = "cpu"
	FieldMemory       Field = "memory"
	FieldGPU          Field = "gpu"
)

// Action is what Gather does when a field can't be read.
type Action int

const (
	// Placeholder substitutes the field's placeholder value and continues.
	Placeholder Action = iota
	// Fatal aborts Gather.
	Fatal
)

// Policy maps fields to the action taken when they fail. Fields missing from
// the map get Placeholder.
type Policy map[Field]Action

// DefaultPolicy aborts on the fields the program can't sensibly display
// without.
func DefaultPolicy() Policy {
	return Policy{
		FieldHostname:    Fatal,
		FieldHost:        Fatal,
		FieldMotherboard: Fatal,
		FieldCPU:         Fatal,
		FieldMemory:      Fatal,
		FieldGPU:         Fatal,
	}
}

// LenientPolicy never aborts.
func LenientPolicy() Policy { return Policy{} }

func (p Policy) action(f Field) Action {
	if p == nil {
		return Placeholder
	}
	return p[f]
}

const unknownPlaceholder = "[unknown]"

var placeholders = map[Field]string{
	FieldUsername:     "[user]",
	FieldDistro:       "Unknown",
	FieldKernel:       "Unknown",
	FieldShell:        "[shell]",
	FieldShellVersion: "[version]",
	FieldTerminal:     "Unknown Terminal",
}

// PlaceholderFor returns the value displayed when f can't be read.
func PlaceholderFor(f Field) string {
	if s, ok := placeholders[f]; ok {
		return s
	}
	return unknownPlaceholder
}
