package lib

import (
	"bufio"
	"fmt"
	"io"
)

const Prompt = ">> "

// StartREPL reads in one line at a time and prints every token on that line.
// It only stops when in is exhausted (nil) or fails (the read error).
func StartREPL(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if _, err := fmt.Fprint(out, Prompt); err != nil {
			return err
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		if err := writeTokens(out, NewLexer(line)); err != nil {
			return err
		}
	}
}

func writeTokens(out io.Writer, l *Lexer) error {
	for tok := l.NextToken(); tok.Type != TokenTypeEOF; tok = l.NextToken() {
		_, err := fmt.Fprintf(out, "{Type: %s, Literal: %s}\n", tok.Type, tok.Literal)
		if err != nil {
			return err
		}
	}
	return nil
}
