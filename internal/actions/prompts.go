package actions

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	repokiterrors "repokit.dev/repokit/internal/errors"
)

// confirmUpdate asks before writing settings to repositories. Both
// declining and cancelling the prompt abort the run.
func confirmUpdate(count int) error {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Update %d repositories?", count),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return repokiterrors.ErrAborted
	}
	if !confirmed {
		return repokiterrors.ErrAborted
	}
	return nil
}
