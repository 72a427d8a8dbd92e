package env

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a dotenv file (e.g. ".env") and sets one environment variable per KEY=VALUE line,
// returning the keys it set in file order. Blank lines, # comments and lines without a key are
// skipped; a value wrapped in matching quotes is unquoted. A missing file sets nothing and is
// not an error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("env: %w", err)
	}
	defer f.Close()

	var keys []string
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return keys, fmt.Errorf("env: %s:%d: %s: %w", path, n, key, err)
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return keys, fmt.Errorf("env: %s: %w", path, err)
	}
	return keys, nil
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}
