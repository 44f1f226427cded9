package argparse

// Exit codes used by Run.
//
// Help output is a successful run. Everything the parser or a handler rejects
// exits with 1, which scripts can treat as "fix the command line and retry":
//   - 0: Normal completion, or help was displayed
//   - 1: A value failed coercion, a value was missing, or a handler failed
//
// Handlers that need a different code can return an *ExitError.

//goland:noinspection GoUnusedConst
const (
	ExitSuccess = 0 // Successful execution or help displayed
	ExitFailure = 1 // Argument validation, coercion or handler failure
)
