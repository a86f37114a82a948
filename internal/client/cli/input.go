package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/keykeeper/internal/shared"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var errEmptyToken = errors.New("access token is required")

// GetAccessToken prompts on w and reads the token from the terminal
// without echo.
func GetAccessToken(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Access token: "); err != nil {
		return "", err
	}
	raw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer shared.WipeByteArray(raw)

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}
