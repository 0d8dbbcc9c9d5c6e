package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

func printJSON(w io.Writer, data any) error {
	dump, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", dump)
	return err
}

func printError(err any) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
}
