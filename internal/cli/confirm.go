package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints the prompt and reads a yes/no answer. Only "y" and "yes"
// (case-insensitive) count as agreement; everything else, including EOF, is
// a refusal.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
