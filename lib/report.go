package lib

import (
	"io"
	"text/template"
)

var reportTemplateString = `{{range .Files}}== {{.Name}} ({{.StatementCount}} statements, {{len .Errors}} errors)
{{range .Statements}}  {{.Kind}} {{.Text}}
{{end}}{{range .Errors}}  error: {{.}}
{{end}}{{end}}`

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateString))

type reportViewModel struct {
	Files []fileViewModel
}

type fileViewModel struct {
	Name           string
	StatementCount int
	Statements     []statementViewModel
	Errors         []string
}

type statementViewModel struct {
	Kind string
	Text string
}

// ReportDir parses every file in dir and writes a report of the result.
func ReportDir(dir string, w io.Writer) error {
	files, err := ReadSourcesFromDir(dir)
	if err != nil {
		return err
	}
	return WriteReport(w, files)
}

func WriteReport(w io.Writer, files []SourceFile) error {
	return reportTemplate.Execute(w, newReportViewModel(files))
}

func newReportViewModel(files []SourceFile) reportViewModel {
	vm := reportViewModel{Files: []fileViewModel{}}

	for _, f := range files {
		fvm := fileViewModel{
			Name:       f.Name,
			Statements: []statementViewModel{},
			Errors:     f.Errors,
		}
		if f.Program != nil {
			for _, stmt := range f.Program.Statements {
				fvm.Statements = append(fvm.Statements, statementViewModel{
					Kind: statementKind(stmt),
					Text: stmt.String(),
				})
			}
		}
		fvm.StatementCount = len(fvm.Statements)
		vm.Files = append(vm.Files, fvm)
	}

	return vm
}

func statementKind(stmt Statement) string {
	switch stmt.(type) {
	case *LetStatement:
		return "let"
	case *ReturnStatement:
		return "return"
	default:
		return "unknown"
	}
}
