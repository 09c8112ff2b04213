package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// lineReader blocks for one line of input at a time. Lines have no length
// limit; over-long values are cut down by the model, not here.
type lineReader struct {
	br  *bufio.Reader
	out io.Writer
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	return &lineReader{br: bufio.NewReader(in), out: out}
}

// readLine prints prompt and returns the next line without its newline.
// A last line without a newline is still returned. It returns io.EOF once
// input is exhausted.
func (r *lineReader) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.br.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prompts for a value, showing def; blank input yields def.
func (r *lineReader) ask(label, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s (%s): ", label, def)
	}
	v, err := r.readLine(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return strings.TrimSpace(v), nil
}

func (r *lineReader) choose() (string, error) {
	v, err := r.readLine("> ")
	return strings.TrimSpace(v), err
}
