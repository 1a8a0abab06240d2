package drills

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
)

const DefaultName = "World"

// Greet 提示输入名字，读取一行后打招呼，返回最终使用的名字
func Greet(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, "Hello! What's your name? "); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	name := strings.TrimRight(line, "\r\n")
	if name == "" {
		name = DefaultName
	}

	if _, err := fmt.Fprintf(out, "Hello, %s! Welcome to Go!\n", name); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintf(out, "You're using Go version: %s\n", runtime.Version()); err != nil {
		return "", err
	}
	return name, nil
}
