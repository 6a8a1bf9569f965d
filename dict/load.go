package dict

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/cache"
	"github.com/domino14/wordsearch/config"
)

//go:embed builtin.txt
var builtinWords string

var builtinOnce = sync.OnceValue(func() *Dict {
	d, err := Load(strings.NewReader(builtinWords))
	if err != nil {
		// Reading from a strings.Reader does not fail.
		panic(err)
	}
	d.Fingerprint()
	return d
})

// Builtin returns the compiled-in English word list (lower case). The
// returned Dict is shared and must not be added to.
func Builtin() *Dict {
	return builtinOnce()
}

// Load reads a word list: one word per line, only the first field of each
// line is used, and blank lines and lines starting with # are skipped.
// Words are stored exactly as written.
func Load(r io.Reader) (*Dict, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		d.AddWord(fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func LoadFile(filename string) (*Dict, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return d, nil
}

func cacheKey(path string) string {
	return "dict:" + path
}

func loadFunc(cfg *config.Config, key string) (any, error) {
	path := strings.TrimPrefix(key, "dict:")
	var d *Dict
	if path == "" {
		d = Builtin()
	} else {
		var err error
		d, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}
	fp := d.Fingerprint()
	log.Debug().Str("path", path).Int("num-words", d.NumWords()).
		Int("num-nodes", d.NumNodes()).
		Str("fingerprint", fmt.Sprintf("%016x", fp)).
		Msg("loaded-dictionary")
	return d, nil
}

// Get returns the word list at path, loading it only once per process.
// An empty path means the built-in list.
func Get(cfg *config.Config, path string) (*Dict, error) {
	obj, err := cache.Load(cfg, cacheKey(path), loadFunc)
	if err != nil {
		return nil, err
	}
	return obj.(*Dict), nil
}

// Reload forgets any cached copy of the word list at path and loads it
// again.
func Reload(cfg *config.Config, path string) (*Dict, error) {
	cache.Evict(cacheKey(path))
	return Get(cfg, path)
}
