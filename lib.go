package lust

import (
	"fmt"
	"net/http"
	"path"
	"sort"

	"github.com/rakyll/statik/fs"

	_ "github.com/patrikn/lust/statik"
)

//go:generate statik -src=lib -f

// LoadLib evaluates the embedded prelude files into env in name order.
func LoadLib(env *Env) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	sort.Slice(fis, func(i, j int) bool { return fis[i].Name() < fis[j].Name() })
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		if err := loadFile(env, statikFS, path.Join("/", fi.Name())); err != nil {
			return err
		}
	}

	return nil
}

func loadFile(env *Env, statikFS http.FileSystem, name string) error {
	f, err := statikFS.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	exprs, err := NewParser(f).ReadAll()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for _, expr := range exprs {
		if _, err := env.Eval(expr); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
