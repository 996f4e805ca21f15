// assets/embed.go
//
// Embedded data shipped with the binary:
//   - official.txt / knuth.txt: default word lists, one word per line.
//   - migrations/*.sql: schema for the SQLite run store.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed official.txt knuth.txt
var FS embed.FS

//go:embed migrations/*.sql
var Migrations embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// OfficialList returns the embedded answer list.
func OfficialList() ([]string, error) {
	return readLines("official.txt")
}

// KnuthList returns the embedded extended list.
func KnuthList() ([]string, error) {
	return readLines("knuth.txt")
}
