// Package render formats user profiles for terminal output.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/m-zajac/ghuser/internal/app"
	"golang.org/x/term"
)

const (
	styleTitle = "\033[1;94m" // bold, bright blue
	styleReset = "\033[0m"
)

// Printer writes human readable output to w.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates new Printer. Titles are colored only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:     w,
		color: isTerminal(w),
	}
}

// Lookup announces the user lookup.
func (p *Printer) Lookup(login string) error {
	_, err := fmt.Fprintf(p.w, "\n\nGetting GitHub user data for: %s\n", login)
	return err
}

// User prints user summary.
func (p *Printer) User(login string, u app.User) error {
	_, err := fmt.Fprintf(p.w, `
%s

ID: %d
Login: %s
Name: %s

%s has %d repositories and %d followers

`,
		p.title("User Data For: "+login),
		u.ID,
		u.Login,
		u.Name,
		u.Name,
		u.PublicRepos,
		u.Followers,
	)
	return err
}

// NotFound prints message for missing user.
func (p *Printer) NotFound(login string) error {
	_, err := fmt.Fprintf(p.w, "%s is not a user!\n", login)
	return err
}

func (p *Printer) title(s string) string {
	if !p.color {
		return s
	}
	return styleTitle + s + styleReset
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
