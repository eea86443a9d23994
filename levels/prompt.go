package levels

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptPath asks for a level filename on r, echoing the question to w.
// An empty answer or a closed input yields def.
func PromptPath(r io.Reader, w io.Writer, def string) string {
	reader := bufio.NewReader(r)
	fmt.Fprintf(w, "Enter the level filename (default %s): ", def)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
