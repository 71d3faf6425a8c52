package git

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

// parseStatusPorcelainV2 groups the NUL terminated records of
// `git status --porcelain=v2 -z` by category. Paths are taken verbatim.
func parseStatusPorcelainV2(r io.Reader) (*entities.WorkingCopyStatus, error) {
	status := &entities.WorkingCopyStatus{}
	scanner := bufio.NewScanner(r)
	scanner.Split(scanNUL)
	skipOriginalPath := false
	for scanner.Scan() {
		record := scanner.Text()
		if skipOriginalPath {
			// a rename record is followed by the path it was renamed from
			skipOriginalPath = false
			continue
		}
		if len(record) < 2 {
			continue
		}
		switch record[0] {
		case '1':
			fields := strings.SplitN(record, " ", 9)
			if len(fields) < 9 {
				continue
			}
			addOrdinaryEntry(status, fields[1], fields[8])
		case '2':
			skipOriginalPath = true
			fields := strings.SplitN(record, " ", 10)
			if len(fields) < 10 {
				continue
			}
			status.Renamed = append(status.Renamed, fields[9])
		case 'u':
			fields := strings.SplitN(record, " ", 11)
			if len(fields) < 11 {
				continue
			}
			status.Conflicted = append(status.Conflicted, fields[10])
		case '?':
			status.NotAdded = append(status.NotAdded, record[2:])
		default:
			// '#' headers and '!' ignored entries
		}
	}
	return status, scanner.Err()
}

func scanNUL(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func addOrdinaryEntry(status *entities.WorkingCopyStatus, xy, path string) {
	if len(xy) < 2 {
		return
	}
	staged, worktree := xy[0], xy[1]
	switch {
	case staged == 'A' || worktree == 'A':
		status.Created = append(status.Created, path)
	case staged == 'D' || worktree == 'D':
		status.Deleted = append(status.Deleted, path)
	default:
		status.Modified = append(status.Modified, path)
	}
}
