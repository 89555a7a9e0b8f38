package cli

// Configuration is the validated result of a successful parse.
type Configuration struct {
	Source            string
	Dest              string
	PagesPerSignature int
}

// OutcomeKind tells which variant an Outcome holds.
type OutcomeKind int

const (
	// Success means Config is populated and valid.
	Success OutcomeKind = iota
	// Failure means Message explains what was wrong.
	Failure
	// Help means -h or --help was given; the caller should print the banner.
	Help
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Outcome is the result of Interpreter.Parse. Exactly one variant is set.
type Outcome struct {
	Kind    OutcomeKind
	Config  Configuration
	Message string
}

// OK reports whether the parse succeeded.
func (o Outcome) OK() bool {
	return o.Kind == Success
}

func succeeded(cfg Configuration) Outcome {
	return Outcome{Kind: Success, Config: cfg}
}

func failed(msg string) Outcome {
	return Outcome{Kind: Failure, Message: msg}
}
