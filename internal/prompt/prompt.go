package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ncruces/zenity"
)

// A Confirmer asks the user a yes-or-no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Terminal asks on a text stream. Anything but "n" or "no" is a yes;
// running out of input without an answer is a no.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t Terminal) Confirm(question string) (bool, error) {
	_, err := fmt.Fprintf(t.Out, "%s [ENTER/n]: ", question)
	if err != nil {
		return false, err
	}

	line, err := bufio.NewReader(t.In).ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return false, nil
	case err != nil && !errors.Is(err, io.EOF):
		return false, fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	declined := strings.EqualFold(answer, "n") || strings.EqualFold(answer, "no")
	return !declined, nil
}

// Dialog asks with a native question dialog.
type Dialog struct {
	Title string
}

func (d Dialog) Confirm(question string) (bool, error) {
	err := zenity.Question(question,
		zenity.Title(d.Title),
		zenity.OKLabel("Replace"),
		zenity.CancelLabel("Keep"),
	)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, zenity.ErrCanceled):
		return false, nil
	default:
		return false, fmt.Errorf("showing dialog: %w", err)
	}
}

var (
	_ Confirmer = Terminal{}
	_ Confirmer = Dialog{}
)
