package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain/models"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VerifyRenderer renders verification results
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{
		out: out,
	}
}

// Render renders the result of the verify task
func (r *VerifyRenderer) Render(result *usecase.VerifyContractResult) error {
	outcome := result.Outcome
	if outcome == nil {
		return nil
	}

	switch outcome.Status {
	case models.VerificationStatusVerified:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s verified at %s on %s", result.ContractName, result.Address.Hex(), result.Network)))
	case models.VerificationStatusAlreadyVerified:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s at %s is already verified", result.ContractName, result.Address.Hex())))
	default:
		fmt.Fprintln(r.out, FormatError(outcome.Message))
	}

	if outcome.URL != "" {
		fmt.Fprintf(r.out, "   %s\n", color.New(color.FgCyan).Sprint(outcome.URL))
	}
	return nil
}

// verificationLabel renders a status as "Verified", "Already Verified", ...
func verificationLabel(outcome *models.VerificationOutcome) string {
	label := cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(string(outcome.Status)), "_", " "))

	switch outcome.Status {
	case models.VerificationStatusVerified:
		return color.New(color.FgGreen).Sprint(label)
	case models.VerificationStatusFailed:
		return color.New(color.FgRed).Sprint(label)
	default:
		return color.New(color.FgYellow).Sprint(label)
	}
}
