package lib

import (
	"io/ioutil"
	"path"
	"strings"
)

// SourceFile is one file of source text along with what the parser made of
// it.
type SourceFile struct {
	Name    string
	Source  string
	Program *Program
	Errors  []string
}

func ReadSourcesFromDir(dir string) ([]SourceFile, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	sources := []SourceFile{}

	// ReadDir already sorts by file name
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := path.Join(dir, file.Name())
		src, err := ReadSourceFile(filePath)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, nil
}

func ReadSourceFile(filePath string) (SourceFile, error) {
	bytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		return SourceFile{}, err
	}

	src := SourceFile{
		Name:   sourceNameFromPath(filePath),
		Source: string(bytes),
	}
	src.Program, src.Errors = Parse(src.Source)

	return src, nil
}

func sourceNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}
