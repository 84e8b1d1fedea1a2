package mcserver

import (
	"bufio"
	"os"
	"strings"
)

// readConsole streams trimmed stdin lines to out until EOF. Lines other
// than "stop"/"reload" are forwarded too; Run ignores anything it doesn't
// recognize.
func readConsole(out chan<- string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out <- strings.TrimSpace(scanner.Text())
	}
}
