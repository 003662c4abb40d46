// Package sshconfig renders Host entries for instances and keeps them in a
// managed region of an ssh_config file.
package sshconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	BeginMarker = "# BEGIN machine"
	EndMarker   = "# END machine"
)

type Host struct {
	Name    string
	Address string
}

type Options struct {
	User                   string
	IdentityFile           string
	Port                   int
	DisableHostKeyChecking bool
}

// Render writes one Host block per host. Hosts without an address are
// skipped.
func Render(w io.Writer, hosts []Host, opts Options) error {
	for _, h := range hosts {
		if h.Address == "" || h.Name == "" {
			continue
		}

		lines := []string{
			fmt.Sprintf("Host %s", h.Name),
			fmt.Sprintf("  HostName %s", h.Address),
		}
		if opts.User != "" {
			lines = append(lines, fmt.Sprintf("  User %s", opts.User))
		}
		if opts.IdentityFile != "" {
			lines = append(lines, fmt.Sprintf("  IdentityFile %s", opts.IdentityFile))
		}
		if opts.Port != 0 && opts.Port != 22 {
			lines = append(lines, fmt.Sprintf("  Port %d", opts.Port))
		}
		if opts.DisableHostKeyChecking {
			lines = append(lines, "  StrictHostKeyChecking no", "  UserKnownHostsFile /dev/null")
		}

		if _, err := fmt.Fprintf(w, "%s\n\n", strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// Splice replaces the managed region of content with block, or appends the
// region when content has none.
func Splice(content, block []byte) ([]byte, error) {
	region := &bytes.Buffer{}
	region.WriteString(BeginMarker + "\n")
	region.Write(block)
	if len(block) > 0 && !bytes.HasSuffix(block, []byte("\n")) {
		region.WriteString("\n")
	}
	region.WriteString(EndMarker + "\n")

	begin := bytes.Index(content, []byte(BeginMarker))
	if begin < 0 {
		out := append([]byte{}, content...)
		if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
			out = append(out, '\n')
		}
		if len(out) > 0 {
			out = append(out, '\n')
		}
		return append(out, region.Bytes()...), nil
	}

	end := bytes.Index(content[begin:], []byte(EndMarker))
	if end < 0 {
		return nil, fmt.Errorf("%q without %q", BeginMarker, EndMarker)
	}
	end += begin + len(EndMarker)
	if end < len(content) && content[end] == '\n' {
		end++
	}

	out := append([]byte{}, content[:begin]...)
	out = append(out, region.Bytes()...)
	return append(out, content[end:]...), nil
}

// Update writes block into the managed region of the file at path, creating
// the file if needed. The file is replaced atomically. A leading "~/" is
// the home directory, and a symlinked file is updated at its target.
func Update(path string, block []byte) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	out, err := Splice(content, block)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".machine-ssh-config-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ExpandHome replaces a leading "~/" in path with the home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func resolvePath(path string) (string, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", err
	}
	return resolved, nil
}
