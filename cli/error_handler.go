package cli

import (
	"fmt"
	"os"

	"github.com/lanterntools/lantern/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a lantern.yml in your project root.\n")
		return err

	case errors.ErrCodeConfigValidation:
		fmt.Fprintf(os.Stderr, "❌ Configuration is invalid.\n")
		if lerr, ok := err.(*errors.LanternError); ok {
			if problems, ok := lerr.Details["errors"].([]string); ok {
				for _, p := range problems {
					fmt.Fprintf(os.Stderr, "   • %s\n", p)
				}
			}
		}
		fmt.Fprintf(os.Stderr, "Run 'lantern config validate' for details.\n")
		return err

	case errors.ErrCodeRouteNotFound:
		if lerr, ok := err.(*errors.LanternError); ok {
			fmt.Fprintf(os.Stderr, "❌ Route '%s' is not registered\n", lerr.Details["route"])
			fmt.Fprintf(os.Stderr, "Run 'lantern routes' to see available routes.\n")
		}
		return err

	case errors.ErrCodeTransitionFailed:
		if lerr, ok := err.(*errors.LanternError); ok {
			fmt.Fprintf(os.Stderr, "❌ Navigation to '%s' failed: %v\n", lerr.Details["route"], lerr.Cause)
		}
		return err

	case errors.ErrCodeSessionExpired:
		fmt.Fprintf(os.Stderr, "❌ Session expired. Start a new session and retry.\n")
		return err

	case errors.ErrCodeQueryFailed:
		if lerr, ok := err.(*errors.LanternError); ok {
			fmt.Fprintf(os.Stderr, "❌ Query '%s' failed: %v\n", lerr.Details["key"], lerr.Cause)
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if lerr, ok := err.(*errors.LanternError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", lerr.ToJSON())
			}
		}
		return err
	}
}
