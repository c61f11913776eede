// Package fixtures loads the files under testdata/ shared by the tests of
// this module.
package fixtures

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Path returns the absolute path of a file below the module's testdata/.
func Path(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

// LoadKeys reads whitespace separated integers from the named data file.
func LoadKeys(name string) []int64 {
	f, err := os.Open(Path(name))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var keys []int64
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		k, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			panic(err)
		}
		keys = append(keys, k)
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}
	return keys
}

// LoadCase returns the query stream name.dat and its expected answers
// name.ans.
func LoadCase(name string) (input, want string) {
	in, err := os.ReadFile(Path(name + ".dat"))
	if err != nil {
		panic(err)
	}
	ans, err := os.ReadFile(Path(name + ".ans"))
	if err != nil {
		panic(err)
	}
	return string(in), string(ans)
}
