package source

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	domain "github.com/AntonioJCosta/wordfreq/internal/core/domain/source"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

/*
FileReader reads input sources from the local filesystem.
It implements the ports.SourceReader interface.
*/
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() ports.SourceReader {
	return &FileReader{}
}

// ReadLines implements the ports.SourceReader interface.
// Lines are split on '\n' and a "\r\n" terminator is removed whole; a final
// line without a terminator is kept. Every line must be valid UTF-8.
func (r *FileReader) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpenError{Path: toUserFriendlyPath(path), Err: unwrapPathError(err)}
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		var readErr *domain.ReadError
		if errors.As(err, &readErr) {
			readErr.Path = toUserFriendlyPath(path)
			return nil, readErr
		}
		return nil, err
	}
	return lines, nil
}

// readLines reads every line of rd. It has no line length limit.
func readLines(rd io.Reader) ([]string, error) {
	br := bufio.NewReader(rd)
	var lines []string
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &domain.ReadError{Line: n, Err: unwrapPathError(err)}
		}
		if line == "" && err != nil {
			return lines, nil
		}
		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(line[:len(line)-1], "\r")
		}
		if !utf8.ValidString(line) {
			return nil, &domain.ReadError{Line: n, Err: domain.ErrInvalidUTF8}
		}
		lines = append(lines, line)
		if err != nil {
			return lines, nil
		}
	}
}

// unwrapPathError drops the *fs.PathError wrapper; the path is reported by the domain error.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
