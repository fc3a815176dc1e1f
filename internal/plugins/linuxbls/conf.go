// SPDX-License-Identifier: MPL-2.0

package linuxbls

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"unicode"
)

// confFile is the parsed form of a BLS type #1 entry file. Entry files are
// line-oriented "key value" records: the key runs to the first whitespace,
// the value is the rest of the line. Blank lines and lines starting with '#'
// are ignored, as are keys this scanner has no use for.
type confFile struct {
	Title     string
	Version   string
	MachineID string
	SortKey   string
	Linux     string
	// Initrd may appear multiple times; order is preserved.
	Initrd []string
	// Options may appear multiple times; fragments are joined in order.
	Options []string
}

var errEmptyConf = errors.New("entry file has no recognized keys")

// parseConf parses entry file contents. Unknown keys are ignored rather than
// rejected, since the Boot Loader Specification allows vendor extensions.
func parseConf(data []byte) (*confFile, error) {
	var (
		conf confFile
		seen bool
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key := line
		value := ""
		if cut := strings.IndexFunc(line, unicode.IsSpace); cut >= 0 {
			key, value = line[:cut], strings.TrimSpace(line[cut+1:])
		}

		switch key {
		case "title":
			conf.Title = value
		case "version":
			conf.Version = value
		case "machine-id":
			conf.MachineID = value
		case "sort-key":
			conf.SortKey = value
		case "linux":
			conf.Linux = value
		case "initrd":
			conf.Initrd = append(conf.Initrd, value)
		case "options":
			conf.Options = append(conf.Options, value)
		default:
			continue
		}
		seen = true
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seen {
		return nil, errEmptyConf
	}
	return &conf, nil
}
