package errorcode

// Errorcode is the exit status of the bch command.
type Errorcode int

const (
	Success                     Errorcode = 0
	Corrected                   Errorcode = 1
	Uncorrectable               Errorcode = 2
	InvalidCommandLineArguments Errorcode = 3
	ConfigurationError          Errorcode = 4
	LogicError                  Errorcode = 7
)

func (e Errorcode) String() string {
	switch e {
	case Success:
		return "success"
	case Corrected:
		return "corrected"
	case Uncorrectable:
		return "uncorrectable"
	case InvalidCommandLineArguments:
		return "invalid command line arguments"
	case ConfigurationError:
		return "configuration error"
	case LogicError:
		return "logic error"
	}
	return "unknown"
}
