package linkfile

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/ports"
)

// StdioPath selects stdin for reads and stdout for writes.
const StdioPath = "-"

// Store reads and writes link files. Writes go through a temp file and a rename
// so a crash never leaves a half-written list behind.
type Store struct {
	stdin  io.Reader
	stdout io.Writer
}

type Option func(*Store)

// WithStdio overrides stdin/stdout (useful for tests).
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(s *Store) {
		if in != nil {
			s.stdin = in
		}
		if out != nil {
			s.stdout = out
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.LinkStore = (*Store)(nil)

func (s *Store) ReadLinks(path string) (string, error) {
	if isStdio(path) {
		b, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", &domain.OpError{
				Op:   "linkfile.read",
				Kind: domain.KindExecution,
				Path: StdioPath,
				Err:  err,
			}
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return "", &domain.OpError{
			Op:   "linkfile.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return string(b), nil
}

func (s *Store) WriteLinks(path string, text string) error {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if isStdio(path) {
		if _, err := io.WriteString(s.stdout, text); err != nil {
			return &domain.OpError{
				Op:   "linkfile.write",
				Kind: domain.KindExecution,
				Path: StdioPath,
				Err:  err,
			}
		}
		return nil
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{
				Op:   "linkfile.mkdir",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), mode); err != nil {
		return &domain.OpError{
			Op:   "linkfile.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "linkfile.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func isStdio(path string) bool {
	p := strings.TrimSpace(path)
	return p == "" || p == StdioPath
}
