package batch

import (
	"fmt"
	"strings"
)

var separator = strings.Repeat("=", 50)

// report writes the console block for one word: the fetching header, then
// either the bullet list, the no-definitions line, or the error line, then
// the separator. Exactly one separator per word.
func (r *Runner) report(res WordResult) {
	fmt.Fprintf(r.out, "Fetching data for %s...\n\n", res.Word)

	switch {
	case res.Err != nil:
		fmt.Fprintf(r.out, "Error during API request for %s: %v\n", res.Word, res.Err)
	case len(res.Definitions) == 0:
		fmt.Fprintf(r.out, "No definitions found for %s.\n", res.Word)
	default:
		fmt.Fprintf(r.out, "Definitions for %s:\n", res.Word)
		for _, def := range res.Definitions {
			fmt.Fprintf(r.out, "- %s\n", def.Text)
		}
	}

	fmt.Fprintln(r.out, separator)
}
