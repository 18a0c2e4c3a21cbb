package ptv

import "fmt"

// MissingFileError indicates that no frame file resolves for a frame
// number. The backward scanner treats it as normal scan termination; the
// linker treats a missing first frame as fatal.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type MissingFileError struct {
	Frame int
	Path  string
	Cause error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("no frame file for frame %d: %s", e.Frame, e.Path)
}

func (e *MissingFileError) Unwrap() error { return e.Cause }

// FormatInferenceError indicates a file name template that matches no known
// raw data convention.
type FormatInferenceError struct {
	Template string
}

func (e *FormatInferenceError) Error() string {
	return fmt.Sprintf("cannot infer particle data format from %q", e.Template)
}

// MalformedRowError indicates a raw data row with fewer than the minimum
// column count required by its format.
type MalformedRowError struct {
	Path    string
	Line    int
	Columns int
	Want    int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s:%d: row has %d columns, want at least %d",
		e.Path, e.Line, e.Columns, e.Want)
}

// InvalidOrderError indicates a frame sequence given to the linker that is
// not strictly ascending. Trajectory id assignment depends on frame order,
// so this is a contract error rather than recoverable input.
type InvalidOrderError struct {
	Prev, Next int
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("frames out of order: %d followed by %d", e.Prev, e.Next)
}
