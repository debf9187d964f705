package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marden/nodeglass/internal/conf"
)

const defaultDataDir = "~/.bitcoin"

// Read returns at most maxLines from the end of the file at path; maxLines
// <= 0 returns every line. A missing file yields nil, nil so a node that
// has never logged renders as an empty view rather than an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// DebugLogPath derives the node's debug log location from its
// configuration: debuglogfile when set (resolved against datadir if
// relative), else debug.log inside datadir, else the stock
// ~/.bitcoin/debug.log.
func DebugLogPath(m *conf.Model) string {
	datadir := ""
	if v, ok, err := m.Get(conf.DefaultSection, "datadir"); err == nil && ok {
		datadir = strings.TrimSpace(v.Str)
	}
	if datadir == "" {
		datadir = expandHome(defaultDataDir)
	}

	if v, ok, err := m.Get(conf.DefaultSection, "debuglogfile"); err == nil && ok {
		logfile := strings.TrimSpace(v.Str)
		if logfile != "" {
			if filepath.IsAbs(logfile) {
				return logfile
			}
			return filepath.Join(datadir, logfile)
		}
	}
	return filepath.Join(datadir, "debug.log")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
