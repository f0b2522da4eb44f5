package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func printPrompt(w io.Writer, prompt string) {
	fmt.Fprint(w, prompt)
}

func readInput(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}
