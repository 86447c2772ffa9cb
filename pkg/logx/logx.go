package logx

import (
	"fmt"
	"log"
	"os"
	"sort"
	"sync/atomic"
)

// Level controls which messages are emitted
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	currentLevel atomic.Int32
	std          = log.New(os.Stdout, "", log.LstdFlags)
)

func init() {
	currentLevel.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be logged
func SetLevel(l Level) {
	currentLevel.Store(int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= currentLevel.Load()
}

func output(l Level, tag, msg string) {
	if !enabled(l) {
		return
	}
	std.Printf("%s %s", tag, msg)
}

func Debug(args ...any)          { output(LevelDebug, "DEBUG", fmt.Sprint(args...)) }
func Debugf(f string, a ...any)  { output(LevelDebug, "DEBUG", fmt.Sprintf(f, a...)) }
func Info(args ...any)           { output(LevelInfo, "INFO", fmt.Sprint(args...)) }
func Infof(f string, a ...any)   { output(LevelInfo, "INFO", fmt.Sprintf(f, a...)) }
func Warn(args ...any)           { output(LevelWarn, "WARN", fmt.Sprint(args...)) }
func Warnf(f string, a ...any)   { output(LevelWarn, "WARN", fmt.Sprintf(f, a...)) }
func Error(args ...any)          { output(LevelError, "ERROR", fmt.Sprint(args...)) }
func Errorf(f string, a ...any)  { output(LevelError, "ERROR", fmt.Sprintf(f, a...)) }

// Fatal logs and exits the process
func Fatal(args ...any) {
	output(LevelError, "FATAL", fmt.Sprint(args...))
	os.Exit(1)
}

func Fatalf(f string, a ...any) {
	output(LevelError, "FATAL", fmt.Sprintf(f, a...))
	os.Exit(1)
}

// Fields carries structured context for an Entry
type Fields map[string]any

// Entry is a logger bound to a set of fields
type Entry struct {
	fields Fields
}

// WithFields returns an entry that prefixes messages with the given fields
func WithFields(fields Fields) *Entry {
	return &Entry{fields: fields}
}

func (e *Entry) render() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += fmt.Sprintf("%s=%v ", k, e.fields[k])
	}
	return out
}

func (e *Entry) Info(args ...any)          { output(LevelInfo, "INFO", e.render()+fmt.Sprint(args...)) }
func (e *Entry) Infof(f string, a ...any)  { output(LevelInfo, "INFO", e.render()+fmt.Sprintf(f, a...)) }
func (e *Entry) Warnf(f string, a ...any)  { output(LevelWarn, "WARN", e.render()+fmt.Sprintf(f, a...)) }
func (e *Entry) Errorf(f string, a ...any) { output(LevelError, "ERROR", e.render()+fmt.Sprintf(f, a...)) }
