// Package driver sequences one source file through the full pipeline —
// lexer, parser, sem, codegen, optional optimize, lltext — exactly as
// spec.md §5 mandates: single-threaded, strictly pass-sequenced, the
// first accumulated error aborts before codegen ever runs.
package driver

import (
	"io"
	"os"

	"minic/internal/codegen"
	"minic/internal/codegen/lltext"
	"minic/internal/diag"
	"minic/internal/parser"
	"minic/internal/sem"
)

// Stage names one step of CompileFile's pipeline, reported through
// Event for internal/ui and the plain-text progress reporter alike.
type Stage uint8

const (
	StageParse Stage = iota
	StageAnalyze
	StageGenerate
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parsing"
	case StageAnalyze:
		return "analyzing"
	case StageGenerate:
		return "generating"
	case StageDone:
		return "done"
	default:
		return "stage"
	}
}

// Status is the outcome half of an Event.
type Status uint8

const (
	StatusWorking Status = iota
	StatusOK
	StatusError
)

// Event reports one file's progress through CompileFile. CLI and UI
// consumers both read from the same channel shape; internal/ui is the
// only consumer that renders it interactively.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Result is one file's compilation outcome.
type Result struct {
	File string
	IR   []byte // textual LLVM IR, nil if compilation failed
	Bag  *diag.Bag
}

// CompileFile runs the full pipeline over src (already read from disk
// or stdin) and reports progress on events, if non-nil. Diagnostics
// accumulate in the returned Bag regardless of outcome; the caller
// decides exit status from Bag.HasErrors() and Result.IR == nil.
func CompileFile(file string, src []byte, optimize bool, events chan<- Event) Result {
	bag := diag.NewBag(100)
	emit := func(stage Stage, status Status) {
		if events != nil {
			events <- Event{File: file, Stage: stage, Status: status}
		}
	}

	emit(StageParse, StatusWorking)
	top := parser.ParseFile(file, src, bag)
	if bag.HasErrors() {
		emit(StageParse, StatusError)
		return Result{File: file, Bag: bag}
	}
	emit(StageParse, StatusOK)

	emit(StageAnalyze, StatusWorking)
	sem.Analyze(file, top, bag)
	if bag.HasErrors() {
		emit(StageAnalyze, StatusError)
		return Result{File: file, Bag: bag}
	}
	emit(StageAnalyze, StatusOK)

	emit(StageGenerate, StatusWorking)
	module, err := codegen.Emit(file, top, optimize)
	if err != nil {
		bag.Add(diag.Errorf(diag.CodeInternal, file, top.Position(), "%s", err.Error()))
		emit(StageGenerate, StatusError)
		return Result{File: file, Bag: bag}
	}
	emit(StageGenerate, StatusOK)
	emit(StageDone, StatusOK)

	return Result{File: file, IR: lltext.Print(module), Bag: bag}
}

// ReadSource reads file from disk, or stdin if file is "-".
func ReadSource(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
